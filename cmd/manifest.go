package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// manifest is the on-disk shape of zoid.toml, the project descriptor
// written by `new`/`init`. The generated project is never itself
// compiled by these commands — scaffolding stops at the manifest and a
// stub entry file.
type manifest struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Entry   string `toml:"entry"`
}

const stubSource = `fn main(): i32 {
    return 0;
}
`

// scaffold writes dir/zoid.toml, creating dir if it does not already
// exist, and writes the stub dir/main.zoid only if that file is absent.
func scaffold(dir, name string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	m := manifest{Name: name, Version: "0.1.0", Entry: "main.zoid"}
	manifestPath := filepath.Join(dir, "zoid.toml")
	f, err := os.Create(manifestPath) // #nosec G304 -- path built from user-supplied project name
	if err != nil {
		return fmt.Errorf("creating %s: %w", manifestPath, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("writing %s: %w", manifestPath, err)
	}

	entryPath := filepath.Join(dir, m.Entry)
	if _, err := os.Stat(entryPath); os.IsNotExist(err) {
		if err := os.WriteFile(entryPath, []byte(stubSource), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", entryPath, err)
		}
	}

	return nil
}
