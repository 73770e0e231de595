package pkgmgr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/depaudit/internal/models"
)

type recorder struct {
	commands []string
	dirs     []string
	fail     string // command prefix that fails
}

func (r *recorder) run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	r.commands = append(r.commands, cmd)
	r.dirs = append(r.dirs, dir)
	if r.fail != "" && strings.HasPrefix(cmd, r.fail) {
		return []byte("ERR! 404 Not Found"), errors.New("exit status 1")
	}
	return nil, nil
}

func sampleResult() *models.DependencyResult {
	r := models.NewDependencyResult()
	r.Missing = []string{"axios", "chalk"}
	r.NotInstalled = []string{"lodash", "axios"}
	r.Unused = []models.UnusedDependency{{Package: "left-pad"}, {Package: "moment"}}
	return r
}

func TestCommands(t *testing.T) {
	tests := []struct {
		eco       models.Ecosystem
		install   string
		uninstall string
	}{
		{models.EcosystemNpm, "npm install a b", "npm uninstall a b"},
		{models.EcosystemComposer, "composer require a b", "composer remove a b"},
		{models.EcosystemPyPI, "pip install a b", "pip uninstall -y a b"},
		{models.EcosystemCargo, "cargo add a b", "cargo remove a b"},
		{models.EcosystemGo, "go get a b", "go get a@none b@none"},
		{models.EcosystemRubyGems, "bundle add a b", "bundle remove a b"},
	}

	for _, tt := range tests {
		t.Run(string(tt.eco), func(t *testing.T) {
			rec := &recorder{}
			m, err := New(tt.eco, "/work", rec.run, nil)
			require.NoError(t, err)

			require.NoError(t, m.Install(context.Background(), "a", "b"))
			require.NoError(t, m.Uninstall(context.Background(), "a", "b"))
			assert.Equal(t, []string{tt.install, tt.uninstall}, rec.commands)
			assert.Equal(t, []string{"/work", "/work"}, rec.dirs)
		})
	}
}

func TestUnsupported(t *testing.T) {
	for _, eco := range []models.Ecosystem{models.EcosystemMaven, models.EcosystemNuGet, models.EcosystemPub, models.EcosystemUnknown} {
		_, err := New(eco, "/work", nil, nil)
		assert.ErrorIs(t, err, ErrUnsupported, string(eco))
	}
}

func TestNoNamesRunsNothing(t *testing.T) {
	rec := &recorder{}
	m, err := New(models.EcosystemNpm, "/work", rec.run, nil)
	require.NoError(t, err)

	require.NoError(t, m.Install(context.Background()))
	require.NoError(t, m.Uninstall(context.Background()))
	assert.Empty(t, rec.commands)
}

func TestNewPlan(t *testing.T) {
	plan := NewPlan(sampleResult())
	assert.Equal(t, []string{"axios", "chalk", "lodash"}, plan.Install)
	assert.Equal(t, []string{"left-pad", "moment"}, plan.Uninstall)
	assert.False(t, plan.Empty())

	assert.True(t, NewPlan(models.NewDependencyResult()).Empty())
}

func TestFix(t *testing.T) {
	rec := &recorder{}
	m, err := New(models.EcosystemNpm, "/work", rec.run, nil)
	require.NoError(t, err)

	_, err = m.Fix(context.Background(), sampleResult(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"npm install axios chalk lodash", "npm uninstall left-pad moment"}, rec.commands)
}

func TestFixDryRun(t *testing.T) {
	rec := &recorder{}
	m, err := New(models.EcosystemNpm, "/work", rec.run, nil)
	require.NoError(t, err)

	plan, err := m.Fix(context.Background(), sampleResult(), true)
	require.NoError(t, err)
	assert.Len(t, plan.Install, 3)
	assert.Empty(t, rec.commands)
}

func TestFixStopsOnFailure(t *testing.T) {
	rec := &recorder{fail: "npm install"}
	m, err := New(models.EcosystemNpm, "/work", rec.run, nil)
	require.NoError(t, err)

	_, err = m.Fix(context.Background(), sampleResult(), false)
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "npm install axios chalk lodash", cmdErr.Command)
	assert.Contains(t, err.Error(), "404 Not Found")
	assert.Len(t, rec.commands, 1)
}
