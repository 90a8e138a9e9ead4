package shiplist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tablelink/tablelink/internal/config"
)

// ShipFilesKey lists the code artifacts a distributed job declares so they
// are shipped to worker processes, comma-joined.
const ShipFilesKey = "tablet.job.shipfiles"

// ErrArtifactNotFound means a dependency's code artifact could not be
// located or does not exist on the local filesystem. Fatal: a distributed
// job cannot run without its code.
var ErrArtifactNotFound = errors.New("dependency artifact not found")

// Locator maps a dependency name to the filesystem path of its code
// artifact.
type Locator interface {
	Locate(name string) (string, bool)
}

// PathLocator is a fixed name-to-path Locator.
type PathLocator map[string]string

func (p PathLocator) Locate(name string) (string, bool) {
	path, ok := p[name]
	return path, ok
}

// AddDependencies ensures each dependency's artifact is present in the
// configuration's ship list. Newly discovered artifacts are appended as
// absolute paths, de-duplicated and sorted; pre-existing entries keep their
// position. Calling it twice with the same dependencies is a no-op the
// second time.
func AddDependencies(conf *config.Config, loc Locator, deps ...string) error {
	existing := conf.StringCollection(ShipFilesKey)
	seen := make(map[string]bool, len(existing))
	for _, entry := range existing {
		seen[entry] = true
	}

	var added []string
	for _, dep := range deps {
		if dep == "" {
			continue
		}
		path, ok := loc.Locate(dep)
		if !ok {
			return fmt.Errorf("%w: no artifact known for %q, cannot ship it to the cluster", ErrArtifactNotFound, dep)
		}
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: could not validate artifact %s for %q: %v", ErrArtifactNotFound, path, dep, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("%w: could not resolve artifact %s for %q: %v", ErrArtifactNotFound, path, dep, err)
		}
		if !seen[abs] {
			seen[abs] = true
			added = append(added, abs)
		}
	}

	if len(added) == 0 {
		return nil
	}

	sort.Strings(added)
	conf.SetStringCollection(ShipFilesKey, append(existing, added...))
	return nil
}
