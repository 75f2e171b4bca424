package shell

import (
	"html/template"
)

type view struct {
	Title        string
	Header       string
	Stylesheet   string
	PlotlyScript string
	Path         string
	UpdateURL    string
	SocketURL    string
	Nav          template.HTML
	Content      template.HTML
	Initial      []Update
}

func (s *Shell) newView(path string) view {
	return view{
		Title:        s.config.Title,
		Header:       s.config.Title,
		Stylesheet:   s.config.Stylesheet,
		PlotlyScript: s.config.PlotlyScript,
		Path:         s.config.Prefix + path,
		UpdateURL:    s.config.Prefix + UpdatePath,
		SocketURL:    s.config.Prefix + SocketPath,
		Nav:          s.nav,
		Initial:      []Update{},
	}
}

// Controls post their value on every change. Replies replace the figure of
// the output graph in place. The websocket is used once open, plain HTTP before.
var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{with .Stylesheet}}<link rel="stylesheet" href="{{.}}">{{end}}
<script src="{{.PlotlyScript}}"></script>
</head>
<body>
<div style="margin: 20px">
<h2 style="text-align: center">{{.Header}}</h2>
{{.Nav}}
<hr>
<div id="page-content">
{{- if .Content}}{{.Content}}
{{- else}}<div class="dash-not-found"><h4>404 - page not found</h4><p>Nothing is registered under {{.Path}}.</p></div>
{{- end -}}
</div>
</div>
<script>
(function () {
  var dash = {updateURL: {{.UpdateURL}}, socketURL: {{.SocketURL}}, initial: {{.Initial}}};
  var socket = null;

  function draw(reply) {
    if (reply.error) {
      console.warn(reply.error);
      return;
    }
    var graph = document.getElementById(reply.output);
    if (graph && window.Plotly) {
      Plotly.react(graph, reply.figure.data, reply.figure.layout);
    }
  }

  function valueOf(control) {
    if (control.dataset.control === "checklist") {
      var boxes = control.querySelectorAll("input[type=checkbox]");
      return Array.prototype.filter.call(boxes, function (box) { return box.checked; })
        .map(function (box) { return box.value; });
    }
    var handles = control.querySelectorAll("input[type=range]");
    var low = parseFloat(handles[0].value);
    var high = parseFloat(handles[1].value);
    return low <= high ? [low, high] : [high, low];
  }

  function send(control) {
    var body = JSON.stringify({id: control.id, value: valueOf(control)});
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(body);
      return;
    }
    fetch(dash.updateURL, {method: "POST", headers: {"Content-Type": "application/json"}, body: body})
      .then(function (response) { return response.json(); })
      .then(draw);
  }

  if (window.WebSocket) {
    socket = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + dash.socketURL);
    socket.onmessage = function (event) { draw(JSON.parse(event.data)); };
  }
  dash.initial.forEach(draw);
  document.querySelectorAll("[data-control]").forEach(function (control) {
    control.addEventListener("change", function () { send(control); });
  });
})();
</script>
</body>
</html>
`))
