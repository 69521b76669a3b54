// Package resources renders the application's icons.
package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"

	"mindful/internal/core/model"
)

// Logo names an icon variant.
type Logo string

const (
	LogoApp        Logo = "app"
	LogoTrayActive Logo = "tray_active"
	LogoTrayPaused Logo = "tray_paused"
)

const logoSize = 64

var logoCache sync.Map

var logoStops = map[Logo][2]color.NRGBA{
	LogoApp:        {model.BrandBlue, model.BrandPurple},
	LogoTrayActive: {model.ResolveColor("teal-400"), model.BrandBlue},
	LogoTrayPaused: {model.ResolveColor("ios-gray"), model.ResolveColor("ios-gray")},
}

// LogoResource returns a Fyne resource for the given logo.
func LogoResource(name Logo) (fyne.Resource, error) {
	if cached, ok := logoCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	stops, ok := logoStops[name]
	if !ok {
		return nil, fmt.Errorf("load logo %s: unknown logo", name)
	}

	data, err := renderDisc(logoSize, stops[0], stops[1])
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(string(name)+".png", data)
	logoCache.Store(name, resource)
	return resource, nil
}

// MustLogo returns a Fyne resource or panics on error.
func MustLogo(name Logo) fyne.Resource {
	resource, err := LogoResource(name)
	if err != nil {
		panic(err)
	}
	return resource
}

// SessionBadge renders a disc in the session's gradient.
func SessionBadge(session model.Session) (fyne.Resource, error) {
	key := "badge_" + session.ID
	if cached, ok := logoCache.Load(key); ok {
		return cached.(fyne.Resource), nil
	}
	from, to := session.Color.RGB()
	data, err := renderDisc(logoSize, from, to)
	if err != nil {
		return nil, fmt.Errorf("render badge %s: %w", session.ID, err)
	}
	resource := fyne.NewStaticResource(key+".png", data)
	logoCache.Store(key, resource)
	return resource, nil
}

// renderDisc draws a diagonal gradient clipped to a circle.
func renderDisc(size int, from, to color.NRGBA) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	radius := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			t := float64(x+y) / float64(2*(size-1))
			img.SetNRGBA(x, y, mix(from, to, t))
		}
	}

	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func mix(from, to color.NRGBA, t float64) color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.NRGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: 0xFF,
	}
}
