/*
# Module: handlers/sharecard.go
Generates shareable PNG cards for activities.

## Linked Modules
- services/activities.go: Activity lookup by name
- storage/repository.go: SessionRepository interface
- types/activity.go: ActivityDetail type

## Tags
http, handlers, image, png, share

## Exports
ShareCardHandler, NewShareCardHandler, HandleShareCard

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/sharecard.go" ;
    code:description "Generates shareable PNG cards for activities" ;
    code:imports :services_activities, :storage_repository, :types_activity ;
    code:exports :ShareCardHandler, :NewShareCardHandler ;
    code:tags "http", "handlers", "image", "png", "share" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"recreo/middleware"
	"recreo/services"
	"recreo/storage"
	"recreo/types"
)

const (
	shareCardWidth  = 1200
	shareCardHeight = 630
)

var shareCardFont = func() *truetype.Font {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}()

// ShareCardHandler serves generated share images for activities
type ShareCardHandler struct {
	sessions   storage.SessionRepository
	activities *services.ActivityService
}

// NewShareCardHandler creates a share card handler
func NewShareCardHandler(sessions storage.SessionRepository, activities *services.ActivityService) *ShareCardHandler {
	return &ShareCardHandler{
		sessions:   sessions,
		activities: activities,
	}
}

// HandleShareCard handles GET /api/share-card/<name>/
// Renders a 1200x630 PNG card for the named activity near the session's
// location. Unknown names and sessions without coordinates get a 404.
func (h *ShareCardHandler) HandleShareCard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/share-card/"), "/")
	if name == "" {
		http.Error(w, "Activity name is required", http.StatusBadRequest)
		return
	}

	sessionID := middleware.EnsureSession(w, r)
	record, err := h.sessions.GetLocation(r.Context(), sessionID)
	if err != nil || record == nil || !record.HasCoords() {
		http.Error(w, "No location set", http.StatusNotFound)
		return
	}

	detail := h.activities.FindByName(*record.Lat, *record.Lon, name)
	if detail == nil {
		http.Error(w, "Activity not found", http.StatusNotFound)
		return
	}

	imageData, err := generateShareCard(detail)
	if err != nil {
		log.Printf("❌ Failed to generate share card for %q: %v", detail.Name, err)
		http.Error(w, "Failed to generate share card", http.StatusInternalServerError)
		return
	}

	log.Printf("🎨 Share card generated: %s (%d bytes)", detail.Name, len(imageData))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(imageData)
}

// generateShareCard renders the card image for an activity
func generateShareCard(detail *types.ActivityDetail) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, shareCardWidth, shareCardHeight))
	drawCardBackground(img)

	white := color.RGBA{255, 255, 255, 255}
	lavender := color.RGBA{230, 230, 250, 255}
	faint := color.RGBA{210, 210, 230, 255}

	currentY := drawCardText(img, detail.Name, 40, 50, shareCardWidth-80, 140, white, true)

	if detail.Description != "" {
		currentY = drawCardText(img, detail.Description, 40, currentY+10, shareCardWidth-80, 80, lavender, false)
	}

	stats := fmt.Sprintf("Rated %.1f (%d reviews)", detail.Rating, detail.ReviewCount)
	if detail.Price != "" {
		stats += " | " + detail.Price
	}
	stats += fmt.Sprintf(" | %.2f miles away", detail.DistanceMiles)
	currentY = drawCardText(img, stats, 40, currentY+10, shareCardWidth-80, 60, lavender, false)

	if detail.Address != "" {
		drawCardText(img, detail.Address, 40, currentY+10, shareCardWidth-80, 60, lavender, false)
	}

	footer := fmt.Sprintf("Generated %s | Recreo", time.Now().Format("Jan 2, 2006"))
	drawCardText(img, footer, 40, shareCardHeight-60, shareCardWidth-80, 30, faint, false)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode share card: %w", err)
	}
	return buf.Bytes(), nil
}

// drawCardBackground fills the card with the app's page gradient
func drawCardBackground(img *image.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		ratio := float64(y) / float64(bounds.Max.Y)
		r := uint8(102 + ratio*16)
		g := uint8(126 - ratio*51)
		b := uint8(234 - ratio*72)
		c := color.RGBA{r, g, b, 255}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// drawCardText draws word-wrapped text within a box and returns the
// vertical position below what was drawn.
func drawCardText(img *image.RGBA, text string, x, y, maxWidth, maxHeight int, textColor color.RGBA, title bool) int {
	fontSize := 24.0
	if title {
		fontSize = 44.0
	}

	face := truetype.NewFace(shareCardFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}

	// Word wrap
	words := strings.Fields(text)
	lines := []string{}
	currentLine := ""
	for _, word := range words {
		testLine := currentLine
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		if drawer.MeasureString(testLine).Ceil() > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	currentY := y + int(fontSize)
	lineHeight := int(fontSize * 1.3)
	for i, line := range lines {
		if i*lineHeight > maxHeight {
			break
		}
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(x),
			Y: fixed.I(currentY),
		}
		drawer.DrawString(line)
		currentY += lineHeight
	}

	return currentY
}
