// Package cloudprofile is the cloud profile manager: providers with their
// profiles in a tree, a property editor for the selected profile and the
// per-profile visibility restrictions the VM chooser honors.
package cloudprofile

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"vboxmanager/internal/actionpool"
	"vboxmanager/internal/dialogs"
	"vboxmanager/internal/extradata"
	"vboxmanager/internal/vmservice"
	"vboxmanager/pkg/logging"
)

const subsystem = "CloudProfileManager"

const (
	TryPageURL = "https://signup.cloud.oracle.com/?sourceType=_ref_coc-asset-opcSignIn&language=en_US"
	HelpURL    = "https://docs.oracle.com/en-us/iaas/Content/API/Concepts/sdkconfig.htm"
)

var (
	ErrNoProvider = errors.New("no cloud provider selected")
	ErrNoProfile  = errors.New("no cloud profile selected")
)

// ProfileData is what the details editor shows for one profile.
type ProfileData struct {
	Name       string
	Properties map[string]string
}

func (d ProfileData) clone() ProfileData {
	return ProfileData{Name: d.Name, Properties: maps.Clone(d.Properties)}
}

func equalData(a, b ProfileData) bool {
	return a.Name == b.Name && maps.Equal(a.Properties, b.Properties)
}

func validateData(d ProfileData) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return errors.New("profile name is empty")
	case strings.Contains(d.Name, "/"):
		return fmt.Errorf("profile name %q contains '/'", d.Name)
	}
	return nil
}

// Provider is a top-level row of the tree.
type Provider struct {
	ID           uuid.UUID
	ShortName    string
	Name         string
	PropertyKeys []string
	Restricted   bool
	Profiles     []*Profile
}

// Definition is the restriction key of the provider.
func (p *Provider) Definition() string { return "/" + p.ShortName }

func (p *Provider) profile(name string) *Profile {
	for _, prof := range p.Profiles {
		if prof.Name == name {
			return prof
		}
	}
	return nil
}

// Profile is a child row of a provider.
type Profile struct {
	ProfileData

	Provider   string
	Restricted bool
}

// Definition is the restriction key of the profile.
func (p *Profile) Definition() string { return "/" + p.Provider + "/" + p.Name }

// Manager holds the provider tree and the profile editor. It belongs to
// the UI goroutine.
type Manager struct {
	svc     vmservice.Cloud
	pool    *actionpool.Pool
	store   *extradata.Store
	browser dialogs.URLOpener

	providers []*Provider
	provider  *Provider
	profile   *Profile
	editor    *dialogs.Editor[ProfileData]

	detailsVisible bool
}

// New returns an empty manager. Call Load to read the providers.
func New(svc vmservice.Cloud, pool *actionpool.Pool, store *extradata.Store, browser dialogs.URLOpener) *Manager {
	m := &Manager{
		svc:     svc,
		pool:    pool,
		store:   store,
		browser: browser,
		editor:  dialogs.NewEditor(equalData, ProfileData.clone, validateData),
	}
	if store != nil {
		m.detailsVisible = store.DetailsExpanded(extradata.KeyCloudProfileManagerDetails)
	}
	if a := pool.Action(actionpool.CloudDetails); a != nil {
		a.SetChecked(m.detailsVisible)
	}
	return m
}

// Providers returns the tree rows.
func (m *Manager) Providers() []*Provider { return m.providers }

// Current returns the selected provider and, when a profile row is
// selected, the profile.
func (m *Manager) Current() (*Provider, *Profile) { return m.provider, m.profile }

// Editor is the details editor bound to the selected profile.
func (m *Manager) Editor() *dialogs.Editor[ProfileData] { return m.editor }

// DetailsVisible reports whether the details pane is expanded.
func (m *Manager) DetailsVisible() bool { return m.detailsVisible }

// Load reads every provider and profile and selects the first provider.
func (m *Manager) Load(ctx context.Context) error {
	m.providers = nil
	m.provider, m.profile = nil, nil

	providers, err := m.svc.CloudProviders(ctx)
	if err != nil {
		m.handleCurrentItemChange()
		return fmt.Errorf("cannot acquire cloud providers: %w", err)
	}

	restricted := m.restrictions()
	for _, cp := range providers {
		p := &Provider{
			ID:           cp.ID,
			ShortName:    cp.ShortName,
			Name:         cp.Name,
			PropertyKeys: slices.Clone(cp.Properties),
		}
		p.Restricted = slices.Contains(restricted, p.Definition())
		for _, prof := range cp.Profiles {
			item := &Profile{
				ProfileData: ProfileData{Name: prof.Name, Properties: maps.Clone(prof.Properties)},
				Provider:    cp.ShortName,
			}
			item.Restricted = slices.Contains(restricted, item.Definition())
			p.Profiles = append(p.Profiles, item)
		}
		m.providers = append(m.providers, p)
	}
	logging.Debug(subsystem, "Loaded %d cloud providers", len(m.providers))

	if len(m.providers) > 0 {
		m.provider = m.providers[0]
	}
	m.handleCurrentItemChange()
	return nil
}

// Select makes a provider row, or a profile row when profile is set,
// current. Unknown names clear the selection.
func (m *Manager) Select(provider, profile string) {
	m.provider, m.profile = nil, nil
	for _, p := range m.providers {
		if p.ShortName != provider {
			continue
		}
		m.provider = p
		if profile != "" {
			m.profile = p.profile(profile)
			if m.profile == nil {
				m.provider = nil
			}
		}
	}
	m.handleCurrentItemChange()
}

// Reset reverts the editor to the selected profile.
func (m *Manager) Reset() {
	m.handleCurrentItemChange()
}

func (m *Manager) handleCurrentItemChange() {
	m.setEnabled(actionpool.CloudAdd, m.provider != nil)
	m.setEnabled(actionpool.CloudImport, m.provider != nil)
	m.setEnabled(actionpool.CloudRemove, m.profile != nil)
	m.setEnabled(actionpool.CloudDetails, m.profile != nil)

	if m.profile != nil {
		m.editor.Load(m.profile.ProfileData)
		return
	}
	m.editor.Clear()
	if m.provider == nil {
		m.SetDetailsVisible(false)
	}
}

func (m *Manager) setEnabled(idx actionpool.Index, enabled bool) {
	if a := m.pool.Action(idx); a != nil {
		a.SetEnabled(enabled)
	}
}

// SetDetailsVisible expands or collapses the details pane and remembers
// the choice.
func (m *Manager) SetDetailsVisible(visible bool) {
	if m.store != nil {
		if err := m.store.SetFlag(extradata.KeyCloudProfileManagerDetails, visible); err != nil {
			logging.Error(subsystem, err, "Failed to save details visibility")
		}
	}
	if a := m.pool.Action(actionpool.CloudDetails); a != nil {
		a.SetChecked(visible)
	}
	m.detailsVisible = visible
}

// Apply saves the edited profile. Renaming stores the profile under the
// new name and then drops the old one.
func (m *Manager) Apply(ctx context.Context) error {
	if m.profile == nil {
		return ErrNoProfile
	}
	if err := m.editor.Err(); err != nil {
		return err
	}
	oldData := m.profile.ProfileData
	newData := m.editor.Data()
	if newData.Name != oldData.Name && m.provider.profile(newData.Name) != nil {
		return fmt.Errorf("profile %q already exists", newData.Name)
	}

	err := m.svc.SaveCloudProfile(ctx, m.provider.ShortName, vmservice.CloudProfile{
		Name:       newData.Name,
		Properties: newData.Properties,
	})
	if err != nil {
		return fmt.Errorf("cannot save cloud profile %s: %w", oldData.Name, err)
	}
	if newData.Name != oldData.Name {
		if err := m.svc.RemoveCloudProfile(ctx, m.provider.ShortName, oldData.Name); err != nil {
			logging.Error(subsystem, err, "Failed to drop renamed profile %s", oldData.Name)
		}
		m.renameRestriction(m.profile.Definition(), "/"+m.provider.ShortName+"/"+newData.Name)
	}

	m.profile.ProfileData = newData.clone()
	m.handleCurrentItemChange()
	return nil
}

// Add creates a profile for the selected provider with every provider
// property present and empty, then selects it.
func (m *Manager) Add(ctx context.Context, name string) error {
	if m.provider == nil {
		return ErrNoProvider
	}
	data := ProfileData{Name: name, Properties: make(map[string]string, len(m.provider.PropertyKeys))}
	if err := validateData(data); err != nil {
		return err
	}
	if m.provider.profile(name) != nil {
		return fmt.Errorf("profile %q already exists", name)
	}
	for _, k := range m.provider.PropertyKeys {
		data.Properties[k] = ""
	}

	err := m.svc.SaveCloudProfile(ctx, m.provider.ShortName, vmservice.CloudProfile{
		Name:       data.Name,
		Properties: data.Properties,
	})
	if err != nil {
		return fmt.Errorf("cannot create cloud profile %s: %w", name, err)
	}
	p := &Profile{ProfileData: data.clone(), Provider: m.provider.ShortName}
	m.provider.Profiles = append(m.provider.Profiles, p)
	m.profile = p
	m.handleCurrentItemChange()
	return nil
}

// Import rereads the selected provider's profiles from its configuration.
// The caller confirms first since unsaved profiles are lost.
func (m *Manager) Import(ctx context.Context) error {
	if m.provider == nil {
		return ErrNoProvider
	}
	provider := m.provider.ShortName
	if err := m.svc.RestoreCloudProfiles(ctx, provider); err != nil {
		return fmt.Errorf("cannot restore cloud profiles of %s: %w", provider, err)
	}
	if err := m.Load(ctx); err != nil {
		return err
	}
	m.Select(provider, "")
	return nil
}

// Remove deletes the selected profile. The caller confirms first.
func (m *Manager) Remove(ctx context.Context) error {
	if m.profile == nil {
		return ErrNoProfile
	}
	name := m.profile.Name
	if err := m.svc.RemoveCloudProfile(ctx, m.provider.ShortName, name); err != nil {
		return fmt.Errorf("cannot remove cloud profile %s: %w", name, err)
	}
	m.provider.Profiles = slices.DeleteFunc(m.provider.Profiles, func(p *Profile) bool { return p == m.profile })
	m.profile = nil
	m.handleCurrentItemChange()
	logging.Info(subsystem, "Removed cloud profile %s/%s", m.provider.ShortName, name)
	return nil
}

// SetRestricted changes whether a provider or profile is hidden from the
// VM chooser. definition is the row's Definition.
func (m *Manager) SetRestricted(definition string, restricted bool) error {
	found := false
	for _, p := range m.providers {
		if p.Definition() == definition {
			p.Restricted, found = restricted, true
		}
		for _, prof := range p.Profiles {
			if prof.Definition() == definition {
				prof.Restricted, found = restricted, true
			}
		}
	}
	if !found {
		return fmt.Errorf("unknown cloud item %q", definition)
	}

	list := m.restrictions()
	list = slices.DeleteFunc(list, func(s string) bool { return s == definition })
	if restricted {
		list = append(list, definition)
	}
	return m.saveRestrictions(list)
}

func (m *Manager) restrictions() []string {
	if m.store == nil {
		return nil
	}
	return m.store.List(extradata.KeyCloudProfileManagerRestrictions)
}

func (m *Manager) saveRestrictions(list []string) error {
	if m.store == nil {
		return nil
	}
	return m.store.SetList(extradata.KeyCloudProfileManagerRestrictions, list)
}

func (m *Manager) renameRestriction(from, to string) {
	list := m.restrictions()
	i := slices.Index(list, from)
	if i < 0 {
		return
	}
	list[i] = to
	if err := m.saveRestrictions(list); err != nil {
		logging.Error(subsystem, err, "Failed to update restrictions")
	}
}

// ShowTryPage opens the provider sign-up page.
func (m *Manager) ShowTryPage() error {
	return m.browser.OpenURL(TryPageURL)
}

// ShowHelp opens the profile configuration help.
func (m *Manager) ShowHelp() error {
	return m.browser.OpenURL(HelpURL)
}
