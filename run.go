package birthday

import (
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	// Decoders for photo files.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs the greeting until the window is closed or an
// attached TestRunner finishes. Zero sizes fall back to the greeting's layout.
func Run(g *Greeting, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = g.width, g.height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.SetShowFPS(cfg.ShowFPS)
	return ebiten.RunGame(g)
}

// LoadPhotoFile is a PhotoLoader that treats the handle as a local image path.
// PNG, JPEG and WebP are supported.
func LoadPhotoFile(p Photo) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(string(p))
	if err != nil {
		return nil, fmt.Errorf("load photo: %w", err)
	}
	return img, nil
}

// LoadPhotoFS returns a PhotoLoader that reads handles as paths inside fsys,
// such as the virtual file system from ebiten.DroppedFiles.
func LoadPhotoFS(fsys fs.FS) PhotoLoader {
	return func(p Photo) (*ebiten.Image, error) {
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, string(p))
		if err != nil {
			return nil, fmt.Errorf("load photo %s: %w", p, err)
		}
		return img, nil
	}
}
