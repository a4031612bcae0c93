package dialogs

// URLOpener opens web pages in the user's browser.
type URLOpener interface {
	OpenURL(url string) error
}
