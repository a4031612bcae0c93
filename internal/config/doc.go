// Package config provides configuration management for vboxmanager.
//
// Configuration is loaded from YAML files and merged in the following
// order, with later sources overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//  2. User Configuration (~/.config/vboxmanager/config.yaml)
//  3. Project Configuration (./.vboxmanager/config.yaml)
//
// # Configuration Structure
//
//	inventory: ~/vms/inventory.yaml   # machines served by the in-process VM service
//	extraDataDir: ~/.config/vboxmanager
//	platform: auto                    # auto, mac, linux or windows
//	updateCheckEnabled: true
//	cloudRefreshInterval: 10s
//	logLevel: info
//
// Only fields present in a layer override the layers below it. The command
// line adds flags and VBOXMANAGER_* environment variables on top.
//
// # Usage
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	if cfg.IsMac() {
//	    // ...
//	}
package config
