package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps body in the shared HTML shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+` | Ridehail</title></head><body><main>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>`+formScript+`</body></html>`)
		return err
	})
}

// formScript posts every form[data-endpoint] as a JSON body. Dotted input
// names become nested objects, number inputs are sent as numbers and empty
// values are skipped. On success the returned token is kept and the browser
// moves to data-redirect.
const formScript = `<script>
document.querySelectorAll("form[data-endpoint]").forEach(function (form) {
  form.addEventListener("submit", function (e) {
    e.preventDefault();
    var body = {};
    new FormData(form).forEach(function (value, key) {
      if (value === "") return;
      var input = form.elements.namedItem(key);
      if (input && input.type === "number") value = Number(value);
      var parts = key.split("."), obj = body;
      for (var i = 0; i < parts.length - 1; i++) obj = obj[parts[i]] = obj[parts[i]] || {};
      obj[parts[parts.length - 1]] = value;
    });
    var status = form.querySelector("[role=alert]");
    fetch(form.dataset.endpoint, {
      method: "POST",
      credentials: "same-origin",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify(body)
    }).then(function (res) {
      return res.json().then(function (data) { return {ok: res.ok, data: data}; });
    }).then(function (r) {
      if (!r.ok) {
        var errs = (r.data.errors || []).map(function (x) { return x.message; });
        status.textContent = errs.length ? errs.join(". ") : r.data.message;
        return;
      }
      if (r.data.token) localStorage.setItem("token", r.data.token);
      window.location.assign(form.dataset.redirect || "/");
    }).catch(function () {
      status.textContent = "Something went wrong. Try again.";
    });
  });
});
</script>`
