package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/telemetry"
	"go.trai.ch/stamp/internal/app"
	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const requestDoc = `{
	"build_command": "zip $filename $source",
	"build_paths": "[\"shared\"]",
	"module_relpath": ".",
	"runtime": "go1.x",
	"source_path": "fn"
}`

type appMocks struct {
	config   *mocks.MockConfigLoader
	hasher   *mocks.MockHasher
	resolver *mocks.MockPathResolver
	sweeper  *mocks.MockSweeper
	manifest *mocks.MockManifestStore
	logger   *mocks.MockLogger
}

func newTestApp(ctrl *gomock.Controller) (*app.App, appMocks) {
	m := appMocks{
		config:   mocks.NewMockConfigLoader(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		resolver: mocks.NewMockPathResolver(ctrl),
		sweeper:  mocks.NewMockSweeper(ctrl),
		manifest: mocks.NewMockManifestStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	a := app.New(m.config, m.hasher, m.resolver, m.sweeper, m.manifest, m.logger, telemetry.NewNoop())
	return a, m
}

func TestApp_Query_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.config.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	m.resolver.EXPECT().Relativize("fn", ".").Return("fn")
	m.resolver.EXPECT().Relativize("shared", ".").Return("shared")
	m.hasher.EXPECT().
		Digest(gomock.Any(), []string{"fn", "shared"}, "go1.x", "zip $filename $source").
		Return("abc123", nil)
	m.manifest.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, record domain.ArtifactRecord) error {
			assert.Equal(t, "abc123", record.Digest)
			assert.Equal(t, "builds/abc123.zip", record.Filename)
			assert.Equal(t, "go1.x", record.Runtime)
			assert.Equal(t, "fn", record.Source)
			assert.False(t, record.CreatedAt.IsZero())
			return nil
		})
	m.sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return(nil, nil)

	out := &bytes.Buffer{}
	err := a.Query(context.Background(), strings.NewReader(requestDoc), out)
	require.NoError(t, err)

	want := `{
  "filename": "builds/abc123.zip",
  "build_command": "zip builds/abc123.zip fn"
}
`
	assert.Equal(t, want, out.String())
}

func TestApp_Query_RemovesStaleArchives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.config.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	m.resolver.EXPECT().Relativize(gomock.Any(), gomock.Any()).Return("fn").AnyTimes()
	m.hasher.EXPECT().Digest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("abc123", nil)
	m.manifest.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	m.sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return([]string{"old.zip"}, nil)
	m.manifest.EXPECT().Delete(gomock.Any(), "old").Return(nil)
	m.logger.EXPECT().Info("removed 1 stale archives")

	err := a.Query(context.Background(), strings.NewReader(requestDoc), &bytes.Buffer{})
	require.NoError(t, err)
}

func TestApp_Query_MissingSourcePath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestApp(ctrl)

	in := strings.NewReader(`{"build_command": "c", "build_paths": "[]", "module_relpath": ".", "runtime": "r", "source_path": "  "}`)
	out := &bytes.Buffer{}

	err := a.Query(context.Background(), in, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSourcePathRequired))
	assert.Empty(t, out.String())
}

func TestApp_Query_MalformedBuildPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestApp(ctrl)

	in := strings.NewReader(`{"build_command": "c", "build_paths": "not json", "module_relpath": ".", "runtime": "r", "source_path": "fn"}`)

	err := a.Query(context.Background(), in, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBuildPathsMalformed))
}

func TestApp_Query_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestApp(ctrl)

	err := a.Query(context.Background(), strings.NewReader("not a document"), &bytes.Buffer{})
	require.Error(t, err)
}

func TestApp_Query_SweepFailureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.config.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	m.resolver.EXPECT().Relativize(gomock.Any(), gomock.Any()).Return("fn").AnyTimes()
	m.hasher.EXPECT().Digest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("abc123", nil)
	m.manifest.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	m.sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return(nil, errors.New("sweep failed"))

	out := &bytes.Buffer{}
	err := a.Query(context.Background(), strings.NewReader(requestDoc), out)
	require.Error(t, err)
	assert.Empty(t, out.String(), "a failed invocation must not emit a partial response")
}

func TestApp_Hash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.hasher.EXPECT().Digest(gomock.Any(), []string{"src"}, "go1.x", "make").Return("abc123", nil)

	out := &bytes.Buffer{}
	err := a.Hash(context.Background(), []string{"src"}, app.HashOptions{Runtime: "go1.x", Command: "make"}, out)
	require.NoError(t, err)
	assert.Equal(t, "abc123\n", out.String())
}

func TestApp_Hash_NoPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _ := newTestApp(ctrl)

	err := a.Hash(context.Background(), nil, app.HashOptions{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoPathsSpecified))
}

func TestApp_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, opts domain.SweepOptions) ([]string, error) {
			// Zero options fall back to the built-in retention window.
			assert.Equal(t, domain.RetentionWindow, opts.MaxAge)
			assert.Equal(t, domain.ArchiveSuffix, opts.Suffix)
			return []string{"aaa.zip", "bbb.zip"}, nil
		})
	m.manifest.EXPECT().Delete(gomock.Any(), "aaa").Return(nil)
	m.manifest.EXPECT().Delete(gomock.Any(), "bbb").Return(nil)

	out := &bytes.Buffer{}
	err := a.Sweep(context.Background(), "builds", domain.SweepOptions{}, out)
	require.NoError(t, err)
	assert.Equal(t, "aaa.zip\nbbb.zip\n", out.String())
}

func TestApp_Sweep_DryRunKeepsManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.sweeper.EXPECT().Sweep(gomock.Any(), gomock.Any()).Return([]string{"aaa.zip"}, nil)

	out := &bytes.Buffer{}
	err := a.Sweep(context.Background(), "builds", domain.SweepOptions{DryRun: true}, out)
	require.NoError(t, err)
	assert.Equal(t, "aaa.zip\n", out.String())
}

func TestApp_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, m := newTestApp(ctrl)

	m.manifest.EXPECT().All(gomock.Any()).Return([]domain.ArtifactRecord{
		{
			Digest:   "abc123",
			Filename: "builds/abc123.zip",
			Runtime:  "go1.x",
		},
	}, nil)

	out := &bytes.Buffer{}
	err := a.List(context.Background(), "builds", out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "go1.x")
	assert.Contains(t, out.String(), "builds/abc123.zip")
}
