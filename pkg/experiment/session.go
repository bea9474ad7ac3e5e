package experiment

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/noahbean33/hash-function-simulation/pkg/conf"
)

// Session identifies one invocation of a simulation tool. The name doubles
// as the results directory name.
type Session struct {
	ID   string
	Name string
}

// NewSession generates a fresh session with a time-prefixed unique name.
func NewSession() Session {
	id := uuid.NewV4().String()
	return Session{
		ID:   id,
		Name: time.Now().Format("2006-01-02T15h04m05s_") + id,
	}
}

// CreateResultsDir creates the session's results directory under workDir and
// records the effective flag configuration in it, so a run can be reproduced
// from what is on disk.
func (s Session) CreateResultsDir(workDir string) (string, error) {
	dir := filepath.Join(workDir, s.Name)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", errors.Wrapf(err, "creating results directory %s", dir)
	}
	if err := s.recordFlags(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// recordFlags writes the current flag configuration as sorted name=value
// lines into a "flags" file inside the results directory.
func (s Session) recordFlags(dir string) error {
	flags := conf.GetFlags()
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%s\n", name, flags[name])
	}

	err := ioutil.WriteFile(filepath.Join(dir, "flags"), []byte(b.String()), 0644)
	return errors.Wrap(err, "recording flags")
}
