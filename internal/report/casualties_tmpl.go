package report

const casualtiesHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #fff; color: #1a1a2e; line-height: 1.5; padding: 1rem; max-width: 1100px; margin: 0 auto; }
h1 { font-size: 1.25rem; margin-bottom: .75rem; }
#stats { padding: .625rem .875rem; background: #e8f4f8; border-radius: 5px; font-size: .8125rem; margin-bottom: .75rem; }
.controls { display: flex; flex-wrap: wrap; gap: .75rem; align-items: center; margin-bottom: .75rem; font-size: .8125rem; }
.controls label { color: #6c757d; }
.controls input[type=range] { width: 260px; vertical-align: middle; }
.controls button { padding: .375rem .875rem; border: none; border-radius: 4px; background: #0d6efd; color: #fff; cursor: pointer; font-size: .8125rem; }
.boxes { display: flex; flex-wrap: wrap; gap: .25rem .875rem; margin-bottom: .75rem; font-size: .8125rem; }
.boxes label { cursor: pointer; }
.chart-box { background: #fafafa; border: 1px solid #dee2e6; border-radius: 8px; padding: 1rem; position: relative; }
#tooltip { position: absolute; pointer-events: none; background: rgba(0,0,0,.8); color: #fff; padding: .5rem .625rem; border-radius: 4px; font-size: .75rem; display: none; }
.legend { display: flex; flex-wrap: wrap; gap: .375rem 1rem; margin-top: .75rem; font-size: .8125rem; }
.legend-title { font-weight: 600; width: 100%; font-size: .75rem; color: #6c757d; text-transform: uppercase; }
.legend-item { cursor: pointer; user-select: none; }
.legend-item.off { opacity: .35; }
.legend-item .swatch { display: inline-block; width: 12px; height: 12px; border-radius: 6px; margin-right: .375rem; vertical-align: -1px; }
footer { margin-top: 1rem; color: #6c757d; font-size: .75rem; }
</style>
</head>
<body>
<h1 id="title">{{.Title}} ({{.MinYear}} - {{.MaxYear}})</h1>

<div id="stats"></div>

<div class="controls">
  <label>Year range:</label>
  <input type="range" id="year-lo" min="{{.MinYear}}" max="{{.MaxYear}}" value="{{.MinYear}}" step="1" oninput="applyFilters()">
  <input type="range" id="year-hi" min="{{.MinYear}}" max="{{.MaxYear}}" value="{{.MaxYear}}" step="1" oninput="applyFilters()">
  <span id="year-label">{{.MinYear}} - {{.MaxYear}}</span>
  <button onclick="resetFilters()">Reset Filters</button>
</div>

<div class="boxes" id="boxes">
  {{range .Legend}}<label><input type="checkbox" checked data-target="{{.Name}}" onchange="applyFilters()"> {{.Name}}</label>
  {{end}}
</div>

<div class="chart-box">
  <div id="chart"></div>
  <div id="tooltip"></div>
</div>

<div class="legend" id="legend">
  <span class="legend-title">Target Type (click to hide/show)</span>
  {{range .Legend}}<span class="legend-item" data-target="{{.Name}}" onclick="toggleTarget(this)"><span class="swatch" style="background:{{.Color}}"></span>{{.Name}}</span>
  {{end}}
</div>

<footer>Generated {{.GeneratedAt}}{{if .Sampled}} &middot; dataset sampled for performance{{end}}</footer>

<script>
var data = {{.Payload}};
var baseTitle = {{.Title}};

var W = 1000, H = 650, ML = 64, MR = 20, MT = 16, MB = 48;
var PW = W - ML - MR, PH = H - MT - MB;

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function selectedTargets() {
  var out = [];
  var boxes = document.querySelectorAll("#boxes input[type=checkbox]");
  for (var i = 0; i < boxes.length; i++) {
    if (boxes[i].checked) out.push(boxes[i].dataset.target);
  }
  return out;
}

// applyFilters mirrors the server-side aggregate.Filter function: select by
// inclusive year range and checked target types, recompute the summary
// stats, and rescale both axes to the visible points with one unit of
// padding on each side.
function applyFilters() {
  var lo = parseInt(document.getElementById("year-lo").value, 10);
  var hi = parseInt(document.getElementById("year-hi").value, 10);
  if (lo > hi) { var t = lo; lo = hi; hi = t; }
  document.getElementById("year-label").textContent = lo + " - " + hi;

  var selected = {};
  selectedTargets().forEach(function (s) { selected[s] = true; });

  var idx = [], killed = 0, wounded = 0;
  for (var i = 0; i < data.year.length; i++) {
    if (data.year[i] >= lo && data.year[i] <= hi && selected[data.target[i]]) {
      idx.push(i);
      killed += data.killed[i];
      wounded += data.wounded[i];
    }
  }

  document.getElementById("title").textContent = baseTitle + " (" + lo + " - " + hi + ")";
  document.getElementById("stats").innerHTML =
    "<strong>Showing:</strong> " + idx.length.toLocaleString() + " incidents | " +
    "<strong>Years:</strong> " + lo + " - " + hi + " | " +
    "<strong>Total Killed:</strong> " + killed.toLocaleString() + " | " +
    "<strong>Total Wounded:</strong> " + wounded.toLocaleString();

  render(idx);
}

function render(idx) {
  var box = document.getElementById("chart");
  box.innerHTML = "";
  var svg = svgEl("svg", { width: "100%", viewBox: "0 0 " + W + " " + H, id: "plot" });

  // padded axis ranges from the visible points
  var xmin = 0, xmax = 1, ymin = 0, ymax = 1;
  if (idx.length > 0) {
    xmin = xmax = data.killed[idx[0]];
    ymin = ymax = data.wounded[idx[0]];
    for (var i = 1; i < idx.length; i++) {
      var x = data.killed[idx[i]], y = data.wounded[idx[i]];
      if (x < xmin) xmin = x; if (x > xmax) xmax = x;
      if (y < ymin) ymin = y; if (y > ymax) ymax = y;
    }
  }
  xmin -= 1; xmax += 1; ymin -= 1; ymax += 1;

  function px(v) { return ML + (v - xmin) / (xmax - xmin) * PW; }
  function py(v) { return MT + PH - (v - ymin) / (ymax - ymin) * PH; }

  // gridlines and tick labels
  for (var g = 0; g <= 5; g++) {
    var gx = ML + g / 5 * PW, gy = MT + PH - g / 5 * PH;
    svg.appendChild(svgEl("line", { x1: ML, y1: gy, x2: ML + PW, y2: gy, stroke: "#ddd", "stroke-dasharray": "6,4" }));
    svg.appendChild(svgEl("line", { x1: gx, y1: MT, x2: gx, y2: MT + PH, stroke: "#ddd", "stroke-dasharray": "6,4" }));
    var ylab = svgEl("text", { x: ML - 8, y: gy + 4, "text-anchor": "end", "font-size": "11", fill: "#6c757d" });
    ylab.textContent = Math.round(ymin + (ymax - ymin) * g / 5);
    svg.appendChild(ylab);
    var xlab = svgEl("text", { x: gx, y: MT + PH + 18, "text-anchor": "middle", "font-size": "11", fill: "#6c757d" });
    xlab.textContent = Math.round(xmin + (xmax - xmin) * g / 5);
    svg.appendChild(xlab);
  }

  var xt = svgEl("text", { x: ML + PW / 2, y: H - 8, "text-anchor": "middle", "font-size": "12" });
  xt.textContent = "Number Killed";
  svg.appendChild(xt);
  var yt = svgEl("text", { x: 14, y: MT + PH / 2, "font-size": "12",
    transform: "rotate(-90 14 " + (MT + PH / 2) + ")", "text-anchor": "middle" });
  yt.textContent = "Number Wounded";
  svg.appendChild(yt);

  for (var j = 0; j < idx.length; j++) {
    var k = idx[j];
    var c = svgEl("circle", {
      cx: px(data.killed[k]), cy: py(data.wounded[k]), r: data.size[k] / 2,
      fill: data.color[k], "fill-opacity": .6, stroke: "#fff", "stroke-width": .5
    });
    c.dataset.i = k;
    svg.appendChild(c);
  }

  svg.addEventListener("mouseover", onHover);
  svg.addEventListener("mouseout", hideTooltip);
  box.appendChild(svg);
}

function onHover(ev) {
  if (ev.target.tagName !== "circle") return;
  var i = parseInt(ev.target.dataset.i, 10);
  var tip = document.getElementById("tooltip");
  tip.innerHTML =
    "<strong>Year:</strong> " + data.year[i] + "<br>" +
    "<strong>Target Type:</strong> " + data.target[i] + "<br>" +
    "<strong>Killed:</strong> " + data.killed[i].toLocaleString() + "<br>" +
    "<strong>Wounded:</strong> " + data.wounded[i].toLocaleString() + "<br>" +
    "<strong>Total Casualties:</strong> " + data.casualties[i].toLocaleString();
  tip.style.display = "block";
  var boxRect = document.querySelector(".chart-box").getBoundingClientRect();
  var left = ev.clientX - boxRect.left + 14;
  if (left + 200 > boxRect.width) left -= 230;
  tip.style.left = left + "px";
  tip.style.top = (ev.clientY - boxRect.top + 8) + "px";
}

function hideTooltip() {
  document.getElementById("tooltip").style.display = "none";
}

function toggleTarget(el) {
  var box = document.querySelector('#boxes input[data-target="' + CSS.escape(el.dataset.target) + '"]');
  if (!box) return;
  box.checked = !box.checked;
  el.classList.toggle("off", !box.checked);
  applyFilters();
}

function resetFilters() {
  var lo = document.getElementById("year-lo"), hi = document.getElementById("year-hi");
  lo.value = lo.min;
  hi.value = hi.max;
  var boxes = document.querySelectorAll("#boxes input[type=checkbox]");
  for (var i = 0; i < boxes.length; i++) boxes[i].checked = true;
  var items = document.querySelectorAll(".legend-item");
  for (var j = 0; j < items.length; j++) items[j].classList.remove("off");
  applyFilters();
}

applyFilters();
</script>
</body>
</html>
`
