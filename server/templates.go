package main

import "html/template"

var TemplateRoot = template.New("")
var HeaderTemplate = template.Must(TemplateRoot.New("header").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>Unit Data{{if .Title}}: {{.Title}}{{end}}</title>
<link rel="stylesheet" href="/assets/style.css?h={{.CssHash}}"/>
{{if not .Static}}
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/chosen/1.8.7/chosen.min.css"/>
<script src="https://code.jquery.com/jquery-3.7.1.min.js"></script>
<script src="https://cdnjs.cloudflare.com/ajax/libs/chosen/1.8.7/chosen.jquery.min.js"></script>
{{end}}
</head>
<body>`))
var FooterTemplate = template.Must(TemplateRoot.New("footer").Parse(`
</body>
</html>
`))

// IndexTemplate is the stats page. Element ids and selector classes are the contract with package view.
var IndexTemplate = template.Must(TemplateRoot.New("index").Parse(`
{{template "header" .}}
<form id="statsForm" method="GET" action="/static">
<table class="stats">
	<thead>
		<tr><th></th><th>Main</th><th>Sub</th></tr>
	</thead>
	<tbody>
		<tr>
			<th>Unit</th>
			<td><select id="mainSlot" name="mainSlot" class="chars" data-placeholder="Choose a unit..."><option value=""></option></select></td>
			<td><select id="subSlot" name="subSlot" class="chars" data-placeholder="Choose a unit..."><option value=""></option></select></td>
		</tr>
		<tr><th>Dev Name</th><td id="mainSlotDevName"></td><td id="subSlotDevName"></td></tr>
		{{range .Breakpoints}}<tr><th>ATK {{.}}</th><td id="mainATK{{.}}"></td><td id="subATK{{.}}"></td></tr>
		{{end}}
		{{range .Breakpoints}}<tr><th>HP {{.}}</th><td id="mainHP{{.}}"></td><td id="subHP{{.}}"></td></tr>
		{{end}}
	</tbody>
</table>
<table class="stats">
	<thead>
		<tr><th></th><th>Equipment</th></tr>
	</thead>
	<tbody>
		<tr>
			<th>Item</th>
			<td><select id="equipSlot" name="equipSlot" class="equips" data-placeholder="Choose equipment..."><option value=""></option></select></td>
		</tr>
		<tr><th>Dev Name</th><td id="equipSlotDevName"></td></tr>
		<tr><th>ATK</th><td id="equipATK"></td></tr>
		<tr><th>HP</th><td id="equipHP"></td></tr>
	</tbody>
</table>
{{if .Static}}<input type="submit" value="Show"/>{{end}}
</form>
{{if not .Static}}
<noscript>This page needs WebAssembly. A <a href="/static">plain version</a> is available.</noscript>
<script src="/assets/wasm_exec.js"></script>
<script>var Entrypoint = "Stats";</script>
<script src="/assets/app.js?h={{.JsHash}}"></script>
{{end}}
{{template "footer" .}}
`))

type PageContext struct {
	Title       string
	Static      bool
	JsHash      string
	CssHash     string
	Breakpoints []int
}
