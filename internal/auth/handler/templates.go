package handler

import "html/template"

// Minimal embedded pages. Real styling and assets are out of scope; the
// templates exist so every route renders a complete response.
const pagesSrc = `
{{define "home"}}<!doctype html>
<html><body>
<h1>Members Portal</h1>
{{if .LoggedIn}}
<p>Hello, {{.Name}}.</p>
<p><a href="/members">Members area</a> | <a href="/logout">Log out</a></p>
{{else}}
<p><a href="/signup">Sign up</a> | <a href="/login">Log in</a></p>
{{end}}
</body></html>{{end}}

{{define "signup"}}<!doctype html>
<html><body>
<h1>Sign up</h1>
{{if .Error}}<p>{{.Error}}</p>{{end}}
<form method="post" action="/signup">
<input name="name" placeholder="name">
<input name="email" placeholder="email">
<input name="password" type="password" placeholder="password">
<button type="submit">Sign up</button>
</form>
</body></html>{{end}}

{{define "login"}}<!doctype html>
<html><body>
<h1>Log in</h1>
{{if .Error}}<p>{{.Error}}</p>{{end}}
<form method="post" action="/login">
<input name="email" placeholder="email">
<input name="password" type="password" placeholder="password">
<button type="submit">Log in</button>
</form>
</body></html>{{end}}

{{define "members"}}<!doctype html>
<html><body>
<h1>Welcome, {{.Name}}</h1>
<p>Role: {{.Role}}</p>
<img src="/public/{{.Image}}" alt="cat">
<p><a href="/logout">Log out</a></p>
</body></html>{{end}}

{{define "admin"}}<!doctype html>
<html><body>
<h1>Admin</h1>
{{if .Error}}<p>{{.Error}}</p>{{end}}
<table>
{{range .Users}}
<tr>
<td>{{.Name}}</td>
<td>{{.Email}}</td>
<td>{{.Role}}</td>
<td>
<form method="post" action="/promote"><input type="hidden" name="email" value="{{.Email}}"><button>Promote</button></form>
<form method="post" action="/demote"><input type="hidden" name="email" value="{{.Email}}"><button>Demote</button></form>
</td>
</tr>
{{end}}
</table>
</body></html>{{end}}

{{define "404"}}<!doctype html>
<html><body>
<h1>404 - Page Not Found</h1>
<p><a href="/">Home</a></p>
</body></html>{{end}}
`

// Templates returns the parsed page set for the router.
func Templates() *template.Template {
	return template.Must(template.New("pages").Parse(pagesSrc))
}
