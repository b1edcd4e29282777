package config

import "path"

// Assets holds opaque texture and font paths for hosts that render sprites.
// The simulation never reads them.
type Assets struct {
	Ship      string
	Laser     string
	Asteroids string // 2x2 atlas, one cell per asteroid variant
	Stars     string
	Font      string
}

// AssetsFromEnv resolves the asset paths under DRIFT_ASSET_DIR.
func AssetsFromEnv() Assets {
	dir := GetEnv("DRIFT_ASSET_DIR", "assets")
	return Assets{
		Ship:      path.Join(dir, "images/ship.png"),
		Laser:     path.Join(dir, "images/laser.png"),
		Asteroids: path.Join(dir, "images/asteroids.png"),
		Stars:     path.Join(dir, "images/stars.png"),
		Font:      path.Join(dir, "fonts/Regular.ttf"),
	}
}
