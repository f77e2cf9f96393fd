package controller

// dashboardPage is the single dashboard page. The chart sections load their
// series from the JSON endpoints and fail independently with inline messages.
const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Departmental Weather Dashboard</title>
<style>
  body { font-family: Arial, sans-serif; margin: 20px; color: #222; }
  h1 { font-size: 1.5em; }
  .section { margin: 24px 0; padding: 16px; border: 1px solid #ccc; border-radius: 4px; }
  .section h2 { font-size: 1.1em; margin-top: 0; }
  .error { color: #b00020; }
  table { border-collapse: collapse; }
  th, td { border: 1px solid #ddd; padding: 4px 8px; font-size: 0.9em; }
  svg { background: #fafafa; border: 1px solid #eee; }
  .controls input { width: 60px; }
</style>
</head>
<body>
<h1>Departmental Weather Dashboard</h1>
<div class="controls">
  <label>Department code:
    <input type="text" id="dept" value="{{.Department}}">
  </label>
  <button onclick="loadAll()">Load</button>
</div>

<div class="section" id="preview-section">
  <h2>Dataset preview</h2>
  <div id="preview"></div>
</div>

<div class="section" id="trend-section">
  <h2>Annual minimum-temperature trend</h2>
  <div id="trend"></div>
</div>

<div class="section" id="map-section">
  <h2>Station map (color = altitude)</h2>
  <div id="map"></div>
</div>

<div class="section" id="distribution-section">
  <h2>Yearly minimum-temperature distribution</h2>
  <div id="distribution"></div>
</div>

<script>
var basePath = {{.BasePath}};

function section(id) { return document.getElementById(id); }

function loadSection(path, id, render) {
  var target = section(id);
  target.innerHTML = 'Loading...';
  fetch(basePath + path)
    .then(function (res) {
      return res.json().then(function (body) {
        if (!res.ok) { throw new Error(body.error || 'Request failed'); }
        return body;
      });
    })
    .then(function (body) { render(target, body); })
    .catch(function (err) {
      target.innerHTML = '<p class="error">' + err.message + '</p>';
    });
}

function renderPreview(target, preview) {
  var html = '<p>' + preview.totalRows + ' rows, ' + preview.totalColumns +
    ' columns, ' + preview.stations + ' stations</p>';
  html += '<table><tr><th>Station</th><th>Name</th><th>Date</th><th>TN (&deg;C)</th></tr>';
  preview.rows.forEach(function (row) {
    html += '<tr><td>' + row.stationId + '</td><td>' + row.stationName +
      '</td><td>' + row.date + '</td><td>' + row.minTemp.toFixed(1) + '</td></tr>';
  });
  html += '</table>';
  target.innerHTML = html;
}

function renderTrend(target, trend) {
  var width = 640, height = 240, pad = 40;
  var points = trend.points;
  if (points.length === 0) {
    target.innerHTML = '<p class="error">No yearly data.</p>';
    return;
  }
  var years = points.map(function (p) { return p.year; });
  var means = points.map(function (p) { return p.meanMinTemp; });
  var minYear = Math.min.apply(null, years), maxYear = Math.max.apply(null, years);
  var minMean = Math.min.apply(null, means), maxMean = Math.max.apply(null, means);
  var spanYear = Math.max(maxYear - minYear, 1);
  var spanMean = Math.max(maxMean - minMean, 0.1);
  var coords = points.map(function (p) {
    var x = pad + (p.year - minYear) / spanYear * (width - 2 * pad);
    var y = height - pad - (p.meanMinTemp - minMean) / spanMean * (height - 2 * pad);
    return x.toFixed(1) + ',' + y.toFixed(1);
  });
  var html = '<p>Station ' + trend.stationName + ' (' + trend.stationId + ')</p>';
  html += '<svg width="' + width + '" height="' + height + '">';
  html += '<polyline fill="none" stroke="#1a73e8" stroke-width="2" points="' + coords.join(' ') + '"/>';
  html += '<text x="' + pad + '" y="' + (height - 8) + '">' + minYear + '</text>';
  html += '<text x="' + (width - pad - 30) + '" y="' + (height - 8) + '">' + maxYear + '</text>';
  html += '</svg>';
  target.innerHTML = html;
}

function renderMap(target, stations) {
  var width = 640, height = 320, pad = 30;
  var lats = stations.map(function (s) { return s.latitude; });
  var lons = stations.map(function (s) { return s.longitude; });
  var alts = stations.map(function (s) { return s.altitude; });
  var minLat = Math.min.apply(null, lats), maxLat = Math.max.apply(null, lats);
  var minLon = Math.min.apply(null, lons), maxLon = Math.max.apply(null, lons);
  var minAlt = Math.min.apply(null, alts), maxAlt = Math.max.apply(null, alts);
  var spanLat = Math.max(maxLat - minLat, 0.01);
  var spanLon = Math.max(maxLon - minLon, 0.01);
  var spanAlt = Math.max(maxAlt - minAlt, 1);
  var html = '<p>' + stations.length + ' stations</p>';
  html += '<svg width="' + width + '" height="' + height + '">';
  stations.forEach(function (s) {
    var x = pad + (s.longitude - minLon) / spanLon * (width - 2 * pad);
    var y = height - pad - (s.latitude - minLat) / spanLat * (height - 2 * pad);
    var shade = Math.round(255 * (s.altitude - minAlt) / spanAlt);
    var color = 'rgb(' + shade + ',80,' + (255 - shade) + ')';
    html += '<circle cx="' + x.toFixed(1) + '" cy="' + y.toFixed(1) +
      '" r="5" fill="' + color + '"><title>' + s.name + ' (' + s.altitude + ' m)</title></circle>';
  });
  html += '</svg>';
  target.innerHTML = html;
}

function renderDistribution(target, boxes) {
  var html = '<table><tr><th>Year</th><th>Lower</th><th>Q1</th><th>Median</th>' +
    '<th>Q3</th><th>Upper</th><th>Outliers</th><th>Samples</th></tr>';
  boxes.forEach(function (b) {
    html += '<tr><td>' + b.year + '</td><td>' + b.lower.toFixed(1) +
      '</td><td>' + b.q1.toFixed(1) + '</td><td>' + b.median.toFixed(1) +
      '</td><td>' + b.q3.toFixed(1) + '</td><td>' + b.upper.toFixed(1) +
      '</td><td>' + b.outliers.length + '</td><td>' + b.samples + '</td></tr>';
  });
  html += '</table>';
  target.innerHTML = html;
}

function loadAll() {
  var dept = encodeURIComponent(document.getElementById('dept').value);
  loadSection('/departments/' + dept + '/preview', 'preview', renderPreview);
  loadSection('/departments/' + dept + '/trend', 'trend', renderTrend);
  loadSection('/departments/' + dept + '/stations', 'map', renderMap);
  loadSection('/departments/' + dept + '/distribution', 'distribution', renderDistribution);
}

loadAll();
</script>
</body>
</html>
`
