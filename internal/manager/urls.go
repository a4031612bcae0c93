package manager

import (
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"vboxmanager/internal/defs"
	"vboxmanager/pkg/logging"
)

// QueueURLs remembers files passed on the command line or dropped on the
// window. They are handled once the window is first shown.
func (c *Controller) QueueURLs(urls ...string) {
	c.urls = append(c.urls, urls...)
	if c.shown && len(c.urls) > 0 {
		c.loop.Post(c.handleURLs)
	}
}

// PendingURLs returns the URLs still waiting for the window to show.
func (c *Controller) PendingURLs() []string { return c.urls }

// Shown tells the controller the window is visible.
func (c *Controller) Shown() {
	if c.shown {
		return
	}
	c.shown = true
	if len(c.urls) > 0 {
		c.loop.Post(c.handleURLs)
	}
}

// handleURLs processes the queue. Machine files start the machine when it
// is registered and register it otherwise. The first appliance opens the
// import wizard and stops processing. Extension packs are offered for
// installation.
func (c *Controller) handleURLs() {
	for len(c.urls) > 0 {
		raw := c.urls[0]
		c.urls = c.urls[1:]

		path := strings.TrimPrefix(raw, "file://")
		if ok, err := afero.Exists(c.fs, path); err != nil || !ok {
			logging.Warn(subsystem, "Ignoring missing file %s", path)
			continue
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".vbox", ".vbox-prev", ".xml":
			if it := c.machineBySettingsFile(path); it != nil {
				c.SetSelection(c.MachineSelection(it.ID()))
				c.StartOrShow(defs.LaunchModeInvalid)
			} else {
				c.AddMachine(path)
			}
		case ".ova", ".ovf":
			c.ui.Open(Request{Kind: RequestWizard, Wizard: defs.WizardTypeImportAppliance, Path: path})
			c.urls = nil
			return
		case ".vbox-extpack":
			c.ui.Open(Request{Kind: RequestExtensionPackInstall, Path: path, Version: extensionPackVersion(path)})
		default:
			logging.Debug(subsystem, "Ignoring %s with unknown extension %q", path, ext)
		}
	}
}

// extensionPackVersion reads the version from names like
// "Extension_Pack-7.0.10.vbox-extpack". It is empty when absent.
func extensionPackVersion(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	i := strings.LastIndex(name, "-")
	if i < 0 {
		return ""
	}
	v, err := semver.NewVersion(name[i+1:])
	if err != nil {
		return ""
	}
	return v.String()
}
