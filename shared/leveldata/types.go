// Package leveldata parses TMX levels into plain data shared by the demo
// client and the headless simulator. It has no dependencies on ebitengine,
// donburi, or resolv.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Level holds everything the hosts need from a TMX map. Coordinates are in
// map pixels with Y pointing down.
type Level struct {
	Name         string
	Width        int
	Height       int
	Obstacles    []Rect
	PlayerSpawns []Point
	MostroSpawns []MostroSpawn
	Routes       map[string][]Point
}

// Point is a map position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned map rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// MostroSpawn places a mostro of Type that patrols Route.
type MostroSpawn struct {
	Point
	Type  string
	Route string
}

// World converts a map point to world metres. Map X becomes world X and map
// Y becomes world Z; the ground is at height zero.
func (p Point) World(pixelsPerMetre float64) mgl64.Vec3 {
	return mgl64.Vec3{p.X / pixelsPerMetre, 0, p.Y / pixelsPerMetre}
}

// FromWorld converts a world position back to map pixels.
func FromWorld(v mgl64.Vec3, pixelsPerMetre float64) Point {
	return Point{X: v.X() * pixelsPerMetre, Y: v.Z() * pixelsPerMetre}
}

// Waypoints returns the named route in world metres, or nil when the level
// has no such route.
func (l *Level) Waypoints(route string, pixelsPerMetre float64) []mgl64.Vec3 {
	points, ok := l.Routes[route]
	if !ok {
		return nil
	}
	out := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		out[i] = p.World(pixelsPerMetre)
	}
	return out
}
