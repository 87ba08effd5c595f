/*
# Module: handlers/templates.go
Embedded HTML templates for the activity finder pages.

## Linked Modules
- handlers/pages.go: Executes these templates

## Tags
html, templates, frontend

## Exports
(Package-private templates only)

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/templates.go" ;
    code:description "Embedded HTML templates for the activity finder pages" ;
    code:tags "html", "templates", "frontend" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import "html/template"

var (
	indexTemplate          = template.Must(template.New("index").Parse(indexHTML))
	locationTemplate       = template.Must(template.New("location").Parse(locationHTML))
	activitiesTemplate     = template.Must(template.New("activities").Parse(activitiesHTML))
	activityDetailTemplate = template.Must(template.New("activity_detail").Parse(activityDetailHTML))
)

const baseStyles = `
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }
        .container {
            background: white;
            border-radius: 12px;
            box-shadow: 0 20px 60px rgba(0,0,0,0.3);
            max-width: 800px;
            margin: 0 auto;
            overflow: hidden;
        }
        .header {
            background: #667eea;
            color: white;
            padding: 30px;
            text-align: center;
        }
        .header h1 { font-size: 24px; margin-bottom: 5px; }
        .header p { opacity: 0.9; font-size: 14px; }
        .header a { color: white; }
        .content { padding: 30px; }
        button, .btn {
            display: inline-block;
            padding: 15px 20px;
            background: #667eea;
            color: white;
            border: none;
            border-radius: 8px;
            font-size: 16px;
            font-weight: 600;
            cursor: pointer;
            text-decoration: none;
            text-align: center;
            transition: background 0.3s;
        }
        button:hover, .btn:hover { background: #5568d3; }
        input, select {
            width: 100%;
            padding: 12px;
            border: 2px solid #e0e0e0;
            border-radius: 8px;
            font-size: 16px;
        }
        input:focus, select:focus {
            outline: none;
            border-color: #667eea;
        }
        .card {
            background: #f9fafb;
            border: 2px solid #e5e7eb;
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 15px;
        }
        .card h3 { color: #667eea; margin-bottom: 10px; font-size: 18px; }
        .card h3 a { color: #667eea; text-decoration: none; }
        .card h3 a:hover { text-decoration: underline; }
        .meta { color: #6b7280; font-size: 14px; margin-bottom: 6px; }
        .badge {
            display: inline-block;
            padding: 4px 12px;
            border-radius: 12px;
            font-size: 12px;
            font-weight: 600;
            background: #d1fae5;
            color: #065f46;
        }
        .badge-closed { background: #fee; color: #c33; }
        .empty-state {
            text-align: center;
            padding: 60px 20px;
            color: #6b7280;
        }
        .error {
            background: #fee;
            color: #c33;
            padding: 12px;
            border-radius: 8px;
            margin-top: 15px;
            display: none;
        }
`

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>🌲 Recreo</title>
    <style>` + baseStyles + `
        .actions {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 10px;
            margin-top: 20px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🌲 Recreo</h1>
            <p>Find outdoor activities near you</p>
        </div>
        <div class="content">
            {{if .Coords}}
            <div class="card">
                <h3>📍 Your Location</h3>
                {{if .Coords.HasPlace}}<div class="meta">{{.Coords.City}}, {{.Coords.State}}</div>{{end}}
                {{if .Coords.HasCoords}}<div class="meta">{{.Coords.Lat}}, {{.Coords.Lon}}</div>{{end}}
            </div>
            {{else}}
            <div class="empty-state">
                <p>No location set yet. Share where you are to get started.</p>
            </div>
            {{end}}
            <div class="actions">
                <a class="btn" href="/location/">📍 Set My Location</a>
                <a class="btn" href="/activities/">🏞️ Browse Activities</a>
            </div>
        </div>
    </div>
</body>
</html>`

const locationHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>📍 Set Location - Recreo</title>
    <style>` + baseStyles + `
        .divider {
            text-align: center;
            color: #6b7280;
            margin: 25px 0;
            font-size: 14px;
        }
        form .row {
            display: grid;
            grid-template-columns: 2fr 1fr;
            gap: 10px;
            margin-bottom: 15px;
        }
        form button { width: 100%; }
        #gps-btn { width: 100%; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>📍 Set Your Location</h1>
            <p><a href="/">Recreo</a> needs a starting point to find activities</p>
        </div>
        <div class="content">
            {{if .Coords}}{{if .Coords.HasPlace}}
            <div class="card">
                <h3>Current Location</h3>
                <div class="meta">{{.Coords.City}}, {{.Coords.State}}</div>
            </div>
            {{end}}{{end}}

            <button id="gps-btn" onclick="useMyLocation()">📡 Use My Current Location</button>
            <div class="error" id="gps-error"></div>

            <div class="divider">or enter a place</div>

            <form method="POST" action="/save_text_location/">
                <div class="row">
                    <input type="text" name="city" placeholder="City" required>
                    <input type="text" name="state" placeholder="State (e.g. CO)" maxlength="20" required>
                </div>
                <button type="submit">💾 Save Location</button>
            </form>
        </div>
    </div>

    <script>
        function getCookie(name) {
            const match = document.cookie.match('(^|;)\\s*' + name + '\\s*=\\s*([^;]+)');
            return match ? match.pop() : '';
        }

        async function useMyLocation() {
            const btn = document.getElementById('gps-btn');
            const errorEl = document.getElementById('gps-error');

            if (!navigator.geolocation) {
                errorEl.textContent = '❌ Geolocation is not supported by this browser';
                errorEl.style.display = 'block';
                return;
            }

            btn.textContent = '📡 Getting location...';
            btn.disabled = true;

            navigator.geolocation.getCurrentPosition(async (pos) => {
                try {
                    const res = await fetch('/api/location/', {
                        method: 'POST',
                        headers: {
                            'Content-Type': 'application/json',
                            'X-CSRFToken': getCookie('csrftoken')
                        },
                        body: JSON.stringify({
                            lat: pos.coords.latitude,
                            lon: pos.coords.longitude
                        })
                    });

                    if (res.ok) {
                        window.location.href = '/activities/';
                    } else {
                        errorEl.textContent = '❌ Could not save your location';
                        errorEl.style.display = 'block';
                        btn.textContent = '📡 Use My Current Location';
                        btn.disabled = false;
                    }
                } catch (e) {
                    errorEl.textContent = '❌ Connection error: ' + e.message;
                    errorEl.style.display = 'block';
                    btn.textContent = '📡 Use My Current Location';
                    btn.disabled = false;
                }
            }, (err) => {
                errorEl.textContent = '❌ Location access denied: ' + err.message;
                errorEl.style.display = 'block';
                btn.textContent = '📡 Use My Current Location';
                btn.disabled = false;
            }, {
                enableHighAccuracy: true,
                timeout: 10000,
                maximumAge: 0
            });
        }
    </script>
</body>
</html>`

const activitiesHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>🏞️ Activities - Recreo</title>
    <style>` + baseStyles + `
        .filters {
            display: grid;
            grid-template-columns: 2fr 1fr 1fr auto auto;
            gap: 10px;
            align-items: center;
            margin-bottom: 25px;
        }
        .filters label {
            display: flex;
            align-items: center;
            gap: 6px;
            font-size: 14px;
            color: #6b7280;
            white-space: nowrap;
        }
        .filters input[type="checkbox"] { width: auto; }
        .filters button { padding: 12px 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🏞️ Nearby Activities</h1>
            {{if .Coords}}{{if .Coords.HasPlace}}<p>Near {{.Coords.City}}, {{.Coords.State}}</p>{{end}}{{end}}
        </div>
        <div class="content">
            <form class="filters" method="GET" action="/activities/">
                <select name="type">
                    <option value="">All categories</option>
                    <option value="active">Active Life</option>
                    <option value="arts">Arts &amp; Entertainment</option>
                    <option value="beaches">Beaches</option>
                    <option value="fitness">Fitness</option>
                    <option value="hiking">Hiking</option>
                    <option value="localflavor">Local Flavor</option>
                    <option value="museums">Museums</option>
                    <option value="parks">Parks</option>
                    <option value="tours">Tours</option>
                </select>
                <input type="number" name="max_distance" placeholder="Miles" min="0" step="0.5">
                <select name="min_rating">
                    <option value="">Any rating</option>
                    <option value="3">3.0+</option>
                    <option value="3.5">3.5+</option>
                    <option value="4">4.0+</option>
                    <option value="4.5">4.5+</option>
                </select>
                <label><input type="checkbox" name="open_now"> Open now</label>
                <button type="submit">🔍 Filter</button>
            </form>

            {{if .Activities}}
            {{range .Activities}}
            <div class="card">
                <h3><a href="/activity/{{.Name}}/">{{.Name}}</a>
                    {{if .IsClosed}}<span class="badge badge-closed">Closed</span>{{end}}</h3>
                {{if .Description}}<div class="meta">{{.Description}}</div>{{end}}
                {{if .Address}}<div class="meta">📍 {{.Address}}</div>{{end}}
                <div class="meta">⭐ {{.Rating}} &middot; {{.DistanceMiles}} miles away</div>
            </div>
            {{end}}
            {{else}}
            <div class="empty-state">
                {{if .Coords}}
                <p>No activities found near you. Try loosening the filters.</p>
                {{else}}
                <p>No location set yet.</p>
                <p style="margin-top: 10px;"><a href="/location/">Set your location</a> to see what's nearby.</p>
                {{end}}
            </div>
            {{end}}
        </div>
    </div>
</body>
</html>`

const activityDetailHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{if .Detail}}{{.Detail.Name}}{{else}}Not Found{{end}} - Recreo</title>
    <style>` + baseStyles + `
        .hero-img {
            width: 100%;
            max-height: 360px;
            object-fit: cover;
            border-radius: 8px;
            margin-bottom: 20px;
        }
        .ai-box {
            background: #eef2ff;
            border: 2px solid #c7d2fe;
            border-radius: 8px;
            padding: 20px;
            margin: 20px 0;
            color: #3730a3;
        }
        .ai-box h3 { color: #4f46e5; margin-bottom: 8px; font-size: 16px; }
        .links { display: flex; gap: 10px; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{if .Detail}}{{.Detail.Name}}{{else}}🔍 Not Found{{end}}</h1>
            <p><a href="/activities/">&larr; Back to activities</a></p>
        </div>
        <div class="content">
            {{if .Detail}}
            {{if .Detail.ImageURL}}<img class="hero-img" src="{{.Detail.ImageURL}}" alt="{{.Detail.Name}}">{{end}}

            <div class="card">
                <div class="meta">⭐ {{.Detail.Rating}} ({{.Detail.ReviewCount}} reviews)
                    {{if .Detail.Price}}&middot; {{.Detail.Price}}{{end}}
                    {{if .Detail.IsClosed}}<span class="badge badge-closed">Closed</span>{{end}}</div>
                {{if .Detail.Description}}<div class="meta">{{.Detail.Description}}</div>{{end}}
                {{if .Detail.Address}}<div class="meta">📍 {{.Detail.Address}}{{if .Detail.ZipCode}} {{.Detail.ZipCode}}{{end}}</div>{{end}}
                {{if .Detail.Phone}}<div class="meta">📞 {{.Detail.Phone}}</div>{{end}}
                <div class="meta">🚗 {{.Detail.DistanceMiles}} miles away</div>
            </div>

            {{if .Detail.AIDescription}}
            <div class="ai-box">
                <h3>✨ About this spot</h3>
                <p>{{.Detail.AIDescription}}</p>
            </div>
            {{end}}

            <div class="links">
                {{if .Detail.SourceURL}}<a class="btn" href="{{.Detail.SourceURL}}" target="_blank" rel="noopener">View on Yelp</a>{{end}}
                <a class="btn" href="/api/share-card/{{.Detail.Name}}/" target="_blank" rel="noopener">🎨 Share Card</a>
            </div>
            {{else}}
            <div class="empty-state">
                <p>We couldn't find "{{.Name}}" near your location.</p>
                <p style="margin-top: 10px;"><a href="/activities/">Browse nearby activities</a> instead.</p>
            </div>
            {{end}}
        </div>
    </div>
</body>
</html>`
