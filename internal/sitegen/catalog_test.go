package sitegen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeCatalogSystem(t *testing.T, root, id, gamelist string) {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir system %s: %v", id, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "gamelist.xml"), []byte(gamelist), 0o644); err != nil {
		t.Fatalf("write gamelist %s: %v", id, err)
	}
}

const tinyGamelist = `<gameList>
  <game>
    <path>./rom.zip</path>
    <name>Some Game</name>
  </game>
</gameList>
`

func TestBuildCatalogCopiesAssetsWithZeroSystems(t *testing.T) {
	root := t.TempDir()

	err := BuildCatalog(context.Background(), newTestRenderer(t), root, map[string]string{"nes": "NES"})
	if err != nil {
		t.Fatalf("BuildCatalog returned error: %v", err)
	}

	for _, p := range []string{"style.css", filepath.Join("assets", "placeholder.png"), "index.html"} {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Fatalf("expected output %s: %v", p, err)
		}
	}
}

func TestBuildCatalogSkipsUnqualifiedDirectories(t *testing.T) {
	root := t.TempDir()
	writeCatalogSystem(t, root, "nes", tinyGamelist)
	// Valid descriptor but unknown identifier.
	writeCatalogSystem(t, root, "foo", tinyGamelist)
	// Known identifier but no descriptor.
	if err := os.MkdirAll(filepath.Join(root, "gba"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Plain file at the top level.
	if err := os.WriteFile(filepath.Join(root, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	systems := map[string]string{"nes": "Nintendo Entertainment System", "gba": "Game Boy Advance"}
	if err := BuildCatalog(context.Background(), newTestRenderer(t), root, systems); err != nil {
		t.Fatalf("BuildCatalog returned error: %v", err)
	}

	home, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("read home page: %v", err)
	}
	html := string(home)
	assert.Contains(t, html, "Nintendo Entertainment System")
	assert.NotContains(t, html, "foo/index.html")
	assert.NotContains(t, html, "Game Boy Advance")

	_, err = os.Stat(filepath.Join(root, "foo", "index.html"))
	assert.True(t, os.IsNotExist(err), "unrecognized system must not be processed")
}

func TestBuildCatalogSortsSystemsByDisplayName(t *testing.T) {
	root := t.TempDir()
	// Directory enumeration order (aaa first) differs from display name order.
	writeCatalogSystem(t, root, "aaa", tinyGamelist)
	writeCatalogSystem(t, root, "zzz", tinyGamelist)

	systems := map[string]string{"aaa": "Sega", "zzz": "Atari"}
	if err := BuildCatalog(context.Background(), newTestRenderer(t), root, systems); err != nil {
		t.Fatalf("BuildCatalog returned error: %v", err)
	}

	home, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatalf("read home page: %v", err)
	}
	html := string(home)
	posAtari := strings.Index(html, "Atari")
	posSega := strings.Index(html, "Sega")
	if posAtari == -1 || posSega == -1 {
		t.Fatalf("missing systems in home page: %d %d", posAtari, posSega)
	}
	assert.Less(t, posAtari, posSega)
}

func TestBuildCatalogIdempotent(t *testing.T) {
	root := t.TempDir()
	writeCatalogSystem(t, root, "nes", systemFixture)
	writeTestPNG(t, filepath.Join(root, "nes", "media", "rom.png"), 200, 100)

	gamelist := strings.Replace(systemFixture, "<path>./rom.zip</path>\n    <name>Real Title</name>",
		"<path>./rom.zip</path>\n    <name>Real Title</name>\n    <image>./media/rom.png</image>", 1)
	if err := os.WriteFile(filepath.Join(root, "nes", "gamelist.xml"), []byte(gamelist), 0o644); err != nil {
		t.Fatalf("write gamelist: %v", err)
	}

	systems := map[string]string{"nes": "Nintendo Entertainment System"}
	if err := BuildCatalog(context.Background(), newTestRenderer(t), root, systems); err != nil {
		t.Fatalf("first build: %v", err)
	}

	thumbPath := filepath.Join(root, "nes", "rom.zip-100.png")
	if _, err := os.Stat(thumbPath); err != nil {
		t.Fatalf("expected derived thumbnail: %v", err)
	}
	sentinel := []byte("sentinel")
	if err := os.WriteFile(thumbPath, sentinel, 0o644); err != nil {
		t.Fatalf("seed sentinel: %v", err)
	}
	firstIndex, err := os.ReadFile(filepath.Join(root, "nes", "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}

	if err := BuildCatalog(context.Background(), newTestRenderer(t), root, systems); err != nil {
		t.Fatalf("second build: %v", err)
	}

	data, err := os.ReadFile(thumbPath)
	if err != nil {
		t.Fatalf("read thumbnail: %v", err)
	}
	assert.Equal(t, sentinel, data, "second run must not re-derive an existing thumbnail")

	secondIndex, err := os.ReadFile(filepath.Join(root, "nes", "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	assert.Equal(t, firstIndex, secondIndex, "re-runs must produce identical html")
}
