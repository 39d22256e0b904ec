package web

import (
	"html/template"
	"io"
	"sort"
)

// landingEntry is one previously generated report on the landing page.
type landingEntry struct {
	VideoID string
	Title   string
}

var landingTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Comment Analysis Reports</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>body { font-family: sans-serif; background-color: #000000; color: #d1d5db; }</style>
</head>
<body class="antialiased">
    <header class="bg-black/80 shadow-lg"><div class="container mx-auto px-6 py-4"><h1 class="text-2xl font-bold text-white">Comment Analysis Reports</h1></div></header>
    <main class="container mx-auto px-6 py-10">
        <form id="analyze-form" class="mb-10 flex gap-3">
            <input id="url" name="url" type="text" placeholder="Paste a YouTube URL..." class="flex-grow bg-gray-800 border border-gray-700 rounded px-4 py-2 text-white">
            <button type="submit" class="bg-teal-500 hover:bg-teal-400 text-black font-semibold px-6 py-2 rounded">Analyze</button>
        </form>
        <p id="feedback" class="text-gray-400 mb-8"></p>
        <h2 class="text-xl font-semibold text-teal-400 mb-4">Generated reports</h2>
        <ul class="space-y-2">{{range .}}
            <li><a class="text-teal-300 hover:underline" href="/reports/{{.VideoID}}_report.html">{{.Title}}</a></li>{{else}}
            <li class="text-gray-500">No reports generated yet.</li>{{end}}
        </ul>
    </main>
    <script>
        document.getElementById('analyze-form').addEventListener('submit', async (e) => {
            e.preventDefault();
            const feedback = document.getElementById('feedback');
            feedback.textContent = 'Analyzing... this can take a minute.';
            const resp = await fetch('/analyze', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({url: document.getElementById('url').value}),
            });
            const data = await resp.json();
            if (resp.ok) { window.location = data.report_url; } else { feedback.textContent = data.error; }
        });
    </script>
</body>
</html>
`))

// renderLanding writes the landing page listing every registered report,
// ordered by title for a stable page.
func renderLanding(w io.Writer, reports map[string]string) error {
	entries := make([]landingEntry, 0, len(reports))
	for id, title := range reports {
		entries = append(entries, landingEntry{VideoID: id, Title: title})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Title == entries[j].Title {
			return entries[i].VideoID < entries[j].VideoID
		}
		return entries[i].Title < entries[j].Title
	})
	return landingTemplate.Execute(w, entries)
}
