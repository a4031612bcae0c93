package cloudprofile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/vmservice/memory"
)

const inventory = `
cloud:
  providers:
    - shortName: OCI
      name: Oracle Cloud Infrastructure
      properties: [user, tenancy, region]
      profiles:
        - name: default
          properties:
            region: eu-frankfurt-1
        - name: dev
          properties:
            region: us-ashburn-1
`

type recordingBrowser struct{ urls []string }

func (b *recordingBrowser) OpenURL(url string) error {
	b.urls = append(b.urls, url)
	return nil
}

func newTestManager(t *testing.T) (*Manager, *memory.Service, *actionpool.Pool, *extradata.Store, *recordingBrowser) {
	t.Helper()
	inv, err := memory.ParseInventory([]byte(inventory))
	require.NoError(t, err)
	svc, err := memory.New(inv, nil)
	require.NoError(t, err)

	pool := actionpool.New(actionpool.Options{Flavor: actionpool.FlavorManager})
	store := extradata.NewMemory()
	browser := &recordingBrowser{}
	m := New(svc, pool, store, browser)
	require.NoError(t, m.Load(context.Background()))
	return m, svc, pool, store, browser
}

func TestLoadSelectsFirstProvider(t *testing.T) {
	m, _, pool, _, _ := newTestManager(t)

	require.Len(t, m.Providers(), 1)
	p := m.Providers()[0]
	assert.Equal(t, "OCI", p.ShortName)
	assert.Equal(t, []string{"user", "tenancy", "region"}, p.PropertyKeys)
	require.Len(t, p.Profiles, 2)

	provider, profile := m.Current()
	assert.Same(t, p, provider)
	assert.Nil(t, profile)
	assert.True(t, pool.Action(actionpool.CloudAdd).Enabled())
	assert.False(t, pool.Action(actionpool.CloudRemove).Enabled())
}

func TestSelectProfileLoadsEditor(t *testing.T) {
	m, _, pool, _, _ := newTestManager(t)

	m.Select("OCI", "dev")
	_, profile := m.Current()
	require.NotNil(t, profile)
	assert.Equal(t, "/OCI/dev", profile.Definition())
	assert.Equal(t, "us-ashburn-1", m.Editor().Data().Properties["region"])
	assert.True(t, pool.Action(actionpool.CloudRemove).Enabled())

	m.Select("OCI", "missing")
	provider, profile := m.Current()
	assert.Nil(t, provider)
	assert.Nil(t, profile)
	assert.False(t, pool.Action(actionpool.CloudAdd).Enabled())
}

func TestApplyProperties(t *testing.T) {
	m, svc, _, _, _ := newTestManager(t)
	ctx := context.Background()
	m.Select("OCI", "default")

	d := m.Editor().Data()
	d.Properties["region"] = "uk-london-1"
	m.Editor().SetData(d)
	require.True(t, m.Editor().CanApply())
	require.NoError(t, m.Apply(ctx))
	assert.False(t, m.Editor().Differs())

	providers, err := svc.CloudProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, "uk-london-1", providers[0].Profiles[0].Properties["region"])
}

func TestApplyRename(t *testing.T) {
	m, svc, _, store, _ := newTestManager(t)
	ctx := context.Background()
	m.Select("OCI", "dev")
	require.NoError(t, m.SetRestricted("/OCI/dev", true))

	d := m.Editor().Data()
	d.Name = "default"
	m.Editor().SetData(d)
	assert.Error(t, m.Apply(ctx), "clashes with a sibling")

	d.Name = "staging"
	m.Editor().SetData(d)
	require.NoError(t, m.Apply(ctx))

	providers, _ := svc.CloudProviders(ctx)
	var names []string
	for _, p := range providers[0].Profiles {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"default", "staging"}, names)
	assert.Equal(t, []string{"/OCI/staging"}, store.List(extradata.KeyCloudProfileManagerRestrictions))
}

func TestApplyRejectsEmptyName(t *testing.T) {
	m, _, _, _, _ := newTestManager(t)
	m.Select("OCI", "dev")

	d := m.Editor().Data()
	d.Name = "  "
	m.Editor().SetData(d)
	assert.False(t, m.Editor().CanApply())
	assert.Error(t, m.Apply(context.Background()))

	m.Reset()
	assert.Equal(t, "dev", m.Editor().Data().Name)
}

func TestAddAndRemove(t *testing.T) {
	m, svc, _, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Add(ctx, "test"))
	_, profile := m.Current()
	require.NotNil(t, profile)
	assert.Equal(t, map[string]string{"user": "", "tenancy": "", "region": ""}, profile.Properties)
	assert.Error(t, m.Add(ctx, "test"))

	require.NoError(t, m.Remove(ctx))
	provider, profile := m.Current()
	assert.NotNil(t, provider)
	assert.Nil(t, profile)
	assert.Len(t, provider.Profiles, 2)
	assert.ErrorIs(t, m.Remove(ctx), ErrNoProfile)

	providers, _ := svc.CloudProviders(ctx)
	assert.Len(t, providers[0].Profiles, 2)
}

func TestImportRestoresProfiles(t *testing.T) {
	m, _, _, _, _ := newTestManager(t)
	ctx := context.Background()

	m.Select("OCI", "dev")
	require.NoError(t, m.Remove(ctx))
	require.NoError(t, m.Import(ctx))

	provider, _ := m.Current()
	require.NotNil(t, provider)
	assert.Len(t, provider.Profiles, 2)
}

func TestRestrictionsArePersisted(t *testing.T) {
	m, svc, pool, store, browser := newTestManager(t)

	require.NoError(t, m.SetRestricted("/OCI", true))
	require.NoError(t, m.SetRestricted("/OCI/dev", true))
	require.NoError(t, m.SetRestricted("/OCI", false))
	assert.Error(t, m.SetRestricted("/AWS", true))
	assert.Equal(t, []string{"/OCI/dev"}, store.List(extradata.KeyCloudProfileManagerRestrictions))

	reopened := New(svc, pool, store, browser)
	require.NoError(t, reopened.Load(context.Background()))
	p := reopened.Providers()[0]
	assert.False(t, p.Restricted)
	assert.False(t, p.Profiles[0].Restricted)
	assert.True(t, p.Profiles[1].Restricted)
}

func TestDetailsAndLinks(t *testing.T) {
	m, _, pool, store, browser := newTestManager(t)

	m.SetDetailsVisible(true)
	assert.True(t, m.DetailsVisible())
	assert.True(t, pool.Action(actionpool.CloudDetails).Checked())
	assert.True(t, store.DetailsExpanded(extradata.KeyCloudProfileManagerDetails))

	require.NoError(t, m.ShowTryPage())
	require.NoError(t, m.ShowHelp())
	assert.Equal(t, []string{TryPageURL, HelpURL}, browser.urls)
}
