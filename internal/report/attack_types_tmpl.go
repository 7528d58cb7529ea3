package report

const attackTypesHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #fff; color: #1a1a2e; line-height: 1.5; padding: 1rem; max-width: 1100px; margin: 0 auto; }
header { display: flex; justify-content: space-between; align-items: baseline; margin-bottom: .75rem; }
header h1 { font-size: 1.25rem; }
header p { color: #6c757d; font-size: .8125rem; }
.modes { display: flex; gap: .5rem; justify-content: center; margin-bottom: .75rem; }
.modes button { padding: .375rem .875rem; border: 1px solid #dee2e6; border-radius: 4px; background: #f8f9fa; cursor: pointer; font-size: .8125rem; }
.modes button.active { background: #0d6efd; border-color: #0d6efd; color: #fff; }
.chart-box { background: #fafafa; border: 1px solid #dee2e6; border-radius: 8px; padding: 1rem; position: relative; }
#readout { position: absolute; pointer-events: none; background: rgba(255,255,255,.95); border: 1px solid #dee2e6; border-radius: 4px; padding: .5rem .625rem; font-size: .75rem; box-shadow: 0 2px 6px rgba(0,0,0,.12); display: none; min-width: 180px; }
#readout .year { font-weight: 700; margin-bottom: .25rem; }
#readout .row { display: flex; justify-content: space-between; gap: 1rem; }
#readout .swatch { display: inline-block; width: 8px; height: 8px; border-radius: 2px; margin-right: .375rem; }
.legend { display: flex; flex-wrap: wrap; gap: .375rem 1rem; margin-top: .75rem; font-size: .8125rem; }
.legend-title { font-weight: 600; width: 100%; font-size: .75rem; color: #6c757d; text-transform: uppercase; }
.legend-item .swatch { display: inline-block; width: 12px; height: 12px; border-radius: 3px; margin-right: .375rem; vertical-align: -1px; }
footer { margin-top: 1rem; color: #6c757d; font-size: .75rem; }
</style>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p>hover for per-year detail</p>
</header>

<div class="modes">
  <button id="mode-stacked" class="active" onclick="setMode('stacked')">Stacked</button>
  <button id="mode-grouped" onclick="setMode('grouped')">Grouped</button>
  <button id="mode-percent" onclick="setMode('percent')">100% Stacked</button>
</div>

<div class="chart-box">
  <div id="chart"></div>
  <div id="readout"></div>
</div>

<div class="legend">
  <span class="legend-title">Attack Types</span>
  {{range .Series}}<span class="legend-item"><span class="swatch" style="background:{{.Color}}"></span>{{.Name}}</span>
  {{end}}
</div>

<footer>Generated {{.GeneratedAt}}</footer>

<script>
var data = {{.Payload}};
var mode = "stacked";

var W = 1000, H = 520, ML = 64, MR = 20, MT = 16, MB = 44;
var PW = W - ML - MR, PH = H - MT - MB;

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

// values returns the per-series numbers for one year index under the
// current mode: raw counts, or percent shares for the 100% view.
function values(yi) {
  var raw = data.series.map(function (s) { return s.values[yi]; });
  if (mode !== "percent") return raw;
  var total = raw.reduce(function (a, b) { return a + b; }, 0);
  if (!total) return raw.map(function () { return 0; });
  return raw.map(function (v) { return v / total * 100; });
}

function yMax() {
  if (mode === "percent") return 100;
  var max = 0;
  for (var yi = 0; yi < data.years.length; yi++) {
    if (mode === "stacked") {
      var total = values(yi).reduce(function (a, b) { return a + b; }, 0);
      if (total > max) max = total;
    } else {
      var vs = values(yi);
      for (var si = 0; si < vs.length; si++) if (vs[si] > max) max = vs[si];
    }
  }
  return max || 1;
}

function xPos(yi) {
  if (data.years.length < 2) return ML + PW / 2;
  return ML + yi / (data.years.length - 1) * PW;
}

function render() {
  var box = document.getElementById("chart");
  box.innerHTML = "";
  var svg = svgEl("svg", { width: "100%", viewBox: "0 0 " + W + " " + H, id: "plot" });
  var max = yMax();

  // horizontal gridlines + y labels
  for (var g = 0; g <= 5; g++) {
    var gy = MT + PH - g / 5 * PH;
    svg.appendChild(svgEl("line", { x1: ML, y1: gy, x2: ML + PW, y2: gy, stroke: "#ddd", "stroke-dasharray": "6,4" }));
    var yl = svgEl("text", { x: ML - 8, y: gy + 4, "text-anchor": "end", "font-size": "11", fill: "#6c757d" });
    yl.textContent = mode === "percent" ? Math.round(max * g / 5) + "%" : Math.round(max * g / 5);
    svg.appendChild(yl);
  }

  // x labels, at most ~12 ticks
  var step = Math.max(1, Math.ceil(data.years.length / 12));
  for (var yi = 0; yi < data.years.length; yi += step) {
    var xl = svgEl("text", { x: xPos(yi), y: MT + PH + 18, "text-anchor": "middle", "font-size": "11", fill: "#6c757d" });
    xl.textContent = data.years[yi];
    svg.appendChild(xl);
  }

  // axis titles
  var xt = svgEl("text", { x: ML + PW / 2, y: H - 6, "text-anchor": "middle", "font-size": "12", fill: "#1a1a2e" });
  xt.textContent = "Year";
  svg.appendChild(xt);
  var yt = svgEl("text", { x: 14, y: MT + PH / 2, "font-size": "12", fill: "#1a1a2e",
    transform: "rotate(-90 14 " + (MT + PH / 2) + ")", "text-anchor": "middle" });
  yt.textContent = mode === "percent" ? "Percentage of Incidents" : "Number of Incidents";
  svg.appendChild(yt);

  function py(v) { return MT + PH - v / max * PH; }

  if (mode === "grouped") {
    for (var si = 0; si < data.series.length; si++) {
      var pts = [];
      for (var i = 0; i < data.years.length; i++) pts.push(xPos(i) + "," + py(values(i)[si]));
      svg.appendChild(svgEl("polyline", { points: pts.join(" "), fill: "none",
        stroke: data.series[si].color, "stroke-width": 2 }));
    }
  } else {
    // cumulative stacks, drawn bottom series first
    for (var sj = 0; sj < data.series.length; sj++) {
      var top = [], bottom = [];
      for (var k = 0; k < data.years.length; k++) {
        var vs = values(k), lo = 0;
        for (var m = 0; m < sj; m++) lo += vs[m];
        bottom.push(xPos(k) + "," + py(lo));
        top.push(xPos(k) + "," + py(lo + vs[sj]));
      }
      var points = top.concat(bottom.reverse()).join(" ");
      svg.appendChild(svgEl("polygon", { points: points, fill: data.series[sj].color,
        "fill-opacity": .8, stroke: data.series[sj].color, "stroke-width": 1 }));
    }
  }

  // hover guideline + capture rect
  var guide = svgEl("line", { x1: 0, y1: MT, x2: 0, y2: MT + PH, stroke: "#888", "stroke-width": 1, visibility: "hidden", id: "guide" });
  svg.appendChild(guide);
  var capture = svgEl("rect", { x: ML, y: MT, width: PW, height: PH, fill: "transparent" });
  capture.addEventListener("mousemove", onHover);
  capture.addEventListener("mouseleave", hideReadout);
  svg.appendChild(capture);

  box.appendChild(svg);
}

function onHover(ev) {
  var svg = document.getElementById("plot");
  var rect = svg.getBoundingClientRect();
  var sx = (ev.clientX - rect.left) * (W / rect.width);
  var span = data.years.length < 2 ? 1 : data.years.length - 1;
  var yi = Math.round((sx - ML) / PW * span);
  yi = Math.max(0, Math.min(data.years.length - 1, yi));

  var guide = document.getElementById("guide");
  guide.setAttribute("x1", xPos(yi));
  guide.setAttribute("x2", xPos(yi));
  guide.setAttribute("visibility", "visible");

  var vs = values(yi);
  var html = '<div class="year">Year: ' + data.years[yi] + "</div>";
  for (var si = data.series.length - 1; si >= 0; si--) {
    var v = mode === "percent" ? vs[si].toFixed(1) + "%" : vs[si];
    html += '<div class="row"><span><span class="swatch" style="background:' + data.series[si].color + '"></span>'
      + data.series[si].name + "</span><span>" + v + "</span></div>";
  }
  var readout = document.getElementById("readout");
  readout.innerHTML = html;
  readout.style.display = "block";
  var boxRect = document.querySelector(".chart-box").getBoundingClientRect();
  var left = ev.clientX - boxRect.left + 16;
  if (left + 220 > boxRect.width) left -= 250;
  readout.style.left = left + "px";
  readout.style.top = (ev.clientY - boxRect.top + 8) + "px";
}

function hideReadout() {
  document.getElementById("readout").style.display = "none";
  document.getElementById("guide").setAttribute("visibility", "hidden");
}

function setMode(m) {
  mode = m;
  var names = ["stacked", "grouped", "percent"];
  for (var i = 0; i < names.length; i++) {
    document.getElementById("mode-" + names[i]).classList.toggle("active", names[i] === m);
  }
  render();
}

render();
</script>
</body>
</html>
`
