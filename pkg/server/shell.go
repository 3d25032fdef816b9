package server

import (
	"fmt"
	"strings"
)

// renderShell produces the HTML page served on GET /. The body is
// populated by the init frame once the WebSocket connects, so the shell
// stays static and cacheable.
func (s *Server) renderShell() (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", s.config.PageTitle)
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<div id=\"glint-root\"></div>\n")
	b.WriteString("<script>\n")
	b.WriteString(bootstrapJS)
	b.WriteString("</script>\n</body>\n</html>\n")
	return b.String(), nil
}

// bootstrapJS is the thin client: it applies init and patch frames and
// forwards DOM events addressed by data-glint-id.
const bootstrapJS = `
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  var root = document.getElementById("glint-root");
  var rootId = 0;

  function nodeById(id) {
    if (id === rootId) return root;
    return document.querySelector('[data-glint-id="' + id + '"]');
  }

  function apply(patch) {
    var target = nodeById(patch.node);
    if (!target) return;
    switch (patch.op) {
    case "sync":
      target.innerHTML = patch.html;
      break;
    case "set-attr":
      target.setAttribute(patch.key, patch.value);
      break;
    case "remove-attr":
      target.removeAttribute(patch.key);
      break;
    case "set-value":
      target.value = patch.value;
      break;
    case "set-html":
      target.innerHTML = patch.value;
      break;
    }
  }

  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    if (frame.type === "init") {
      rootId = frame.root;
      root.innerHTML = frame.html;
    } else if (frame.type === "patch") {
      frame.ops.forEach(apply);
    }
  };

  ["click", "dblclick", "input", "change", "submit", "keydown", "keyup"].forEach(function (kind) {
    document.addEventListener(kind, function (e) {
      var el = e.target && e.target.closest && e.target.closest("[data-glint-id]");
      if (!el || ws.readyState !== WebSocket.OPEN) return;
      if (kind === "submit") e.preventDefault();
      ws.send(JSON.stringify({
        type: "event",
        node: parseInt(el.getAttribute("data-glint-id"), 10),
        event: kind,
        value: el.value || "",
        checked: !!el.checked,
        key: e.key || ""
      }));
    });
  });
})();
`
