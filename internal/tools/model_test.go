package tools

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vboxmanager/internal/defs"
	"vboxmanager/internal/extradata"
)

type keyPress string

func (k keyPress) String() string { return string(k) }

func newModel(t *testing.T, store *extradata.Store) *Model {
	t.Helper()
	m := New(store)
	m.Resize(20)
	m.Init()
	return m
}

func types(items []*Item) []defs.ToolType {
	var out []defs.ToolType
	for _, it := range items {
		out = append(out, it.Type)
	}
	return out
}

func TestInitDefaults(t *testing.T) {
	m := newModel(t, extradata.NewMemory())

	assert.Equal(t, defs.ToolClassGlobal, m.Class())
	assert.Equal(t, defs.ToolTypeWelcome, m.Type())
	assert.Equal(t, m.Current(), m.Focus())
	assert.Equal(t, []defs.ToolType{
		defs.ToolTypeWelcome, defs.ToolTypeMedia, defs.ToolTypeNetwork, defs.ToolTypeCloud, defs.ToolTypeResources,
	}, types(m.NavigationList()))
}

func TestInitRestoresPersistedTools(t *testing.T) {
	store := extradata.NewMemory()
	require.NoError(t, store.SetToolsLastItemsChosen(defs.ToolTypeNetwork, defs.ToolTypeLogs))

	m := newModel(t, store)
	assert.Equal(t, defs.ToolTypeNetwork, m.Type())

	m.SetClass(defs.ToolClassMachine)
	assert.Equal(t, defs.ToolTypeLogs, m.Type())
}

func TestInitFallsBackOnWrongClass(t *testing.T) {
	store := extradata.NewMemory()
	require.NoError(t, store.Set(extradata.KeyToolsLastItemsChosen, "Snapshots,Bogus"))

	m := newModel(t, store)
	assert.Equal(t, defs.ToolTypeWelcome, m.LastType(defs.ToolClassGlobal))
	assert.Equal(t, defs.ToolTypeSnapshots, m.LastType(defs.ToolClassMachine))

	require.NoError(t, store.Set(extradata.KeyToolsLastItemsChosen, "Media,Cloud"))
	m = newModel(t, store)
	assert.Equal(t, defs.ToolTypeMedia, m.LastType(defs.ToolClassGlobal))
	assert.Equal(t, defs.ToolTypeDetails, m.LastType(defs.ToolClassMachine))
}

func TestDeinitPersistsPair(t *testing.T) {
	store := extradata.NewMemory()
	m := newModel(t, store)

	m.SetType(defs.ToolTypeCloud)
	m.SetClass(defs.ToolClassMachine)
	m.SetType(defs.ToolTypePerformance)
	require.NoError(t, m.Deinit())

	assert.Equal(t, "Cloud,Performance", store.Get(extradata.KeyToolsLastItemsChosen))
}

func TestSetClassSwitchesVisibleItems(t *testing.T) {
	m := newModel(t, nil)
	var changes []defs.ToolType
	m.OnSelectionChanged(func(t defs.ToolType) { changes = append(changes, t) })

	m.SetClass(defs.ToolClassMachine)
	assert.Equal(t, defs.ToolTypeDetails, m.Type())
	assert.Equal(t, []defs.ToolType{defs.ToolTypeDetails}, changes)
	for _, it := range m.Items() {
		assert.Equal(t, it.Class == defs.ToolClassMachine, it.Visible(), "%s", it.Type)
	}

	m.SetClass(defs.ToolClassGlobal)
	assert.Equal(t, defs.ToolTypeWelcome, m.Type())
}

func TestCurrentMatchesClass(t *testing.T) {
	m := newModel(t, nil)
	for _, c := range []defs.ToolClass{defs.ToolClassMachine, defs.ToolClassGlobal, defs.ToolClassMachine} {
		m.SetClass(c)
		require.NotNil(t, m.Current())
		assert.Equal(t, c, m.Current().Class)
	}
}

func TestSetTypeIgnoresHiddenItems(t *testing.T) {
	m := newModel(t, nil)

	m.SetType(defs.ToolTypeSnapshots)
	assert.Equal(t, defs.ToolTypeWelcome, m.Type())

	m.SetType(defs.ToolTypeMedia)
	assert.Equal(t, defs.ToolTypeMedia, m.Type())
	assert.Equal(t, defs.ToolTypeMedia, m.LastType(defs.ToolClassGlobal))
}

func TestSetCurrentOutsideNavigation(t *testing.T) {
	m := newModel(t, nil)
	m.SetCurrent(m.Item(defs.ToolTypeLogs))

	assert.Equal(t, defs.ToolTypeWelcome, m.Type())
	assert.Equal(t, defs.ToolTypeDetails, m.LastType(defs.ToolClassMachine))
}

func TestRestrictedTypesAreHidden(t *testing.T) {
	m := newModel(t, nil)
	m.SetType(defs.ToolTypeCloud)

	m.SetRestrictedTypes([]defs.ToolType{defs.ToolTypeCloud, defs.ToolTypeResources})
	assert.False(t, m.Item(defs.ToolTypeCloud).Visible())
	assert.Equal(t, []defs.ToolType{defs.ToolTypeWelcome, defs.ToolTypeMedia, defs.ToolTypeNetwork}, types(m.NavigationList()))
	assert.NotEqual(t, defs.ToolTypeCloud, m.Type())
	assert.Contains(t, m.NavigationList(), m.Current())
}

func TestRemovingLastItemClearsCurrent(t *testing.T) {
	m := newModel(t, nil)
	m.SetClass(defs.ToolClassMachine)

	for _, tt := range []defs.ToolType{defs.ToolTypeDetails, defs.ToolTypeSnapshots, defs.ToolTypeLogs, defs.ToolTypePerformance} {
		m.RemoveItem(tt)
		if cur := m.Current(); cur != nil {
			assert.Contains(t, m.NavigationList(), cur)
		}
	}
	assert.Empty(t, m.NavigationList())
	assert.Nil(t, m.Current())
	assert.Nil(t, m.Focus())
	assert.Equal(t, defs.ToolTypeInvalid, m.Type())
	assert.Equal(t, defs.ToolTypeDetails, m.LastType(defs.ToolClassMachine))
}

func TestLayout(t *testing.T) {
	m := newModel(t, nil)

	nav := m.NavigationList()
	require.Len(t, nav, 5)
	for i, it := range nav {
		assert.Equal(t, image.Rect(Margin, Margin+i*(ItemHeight+Spacing), 20-Margin, Margin+i*(ItemHeight+Spacing)+ItemHeight), it.Rect())
	}
	assert.Equal(t, defs.ToolTypeMedia, m.ItemAt(image.Pt(3, Margin+1)).Type)
	assert.Nil(t, m.ItemAt(image.Pt(3, 40)))
}

func TestMouseActivation(t *testing.T) {
	m := newModel(t, nil)
	network := image.Pt(2, Margin+2)

	assert.True(t, m.MousePress(network))
	assert.Equal(t, defs.ToolTypeWelcome, m.Type(), "press alone does not activate")
	assert.True(t, m.MouseRelease(network))
	assert.Equal(t, defs.ToolTypeNetwork, m.Type())
	assert.Equal(t, m.Current(), m.Focus())

	// Releasing elsewhere cancels.
	m.MousePress(image.Pt(2, Margin))
	assert.False(t, m.MouseRelease(image.Pt(2, Margin+3)))
	assert.Equal(t, defs.ToolTypeNetwork, m.Type())
}

func TestDisabledClassIsNotActivatable(t *testing.T) {
	m := newModel(t, nil)
	m.SetEnabled(defs.ToolClassGlobal, false)

	assert.False(t, m.Enabled(defs.ToolClassGlobal))
	assert.True(t, m.Item(defs.ToolTypeMedia).Visible())
	assert.False(t, m.MousePress(image.Pt(2, Margin+1)))

	m.HandleKey(keyPress("down"))
	m.HandleKey(keyPress("enter"))
	assert.Equal(t, defs.ToolTypeWelcome, m.Type())
	assert.Equal(t, defs.ToolTypeMedia, m.Focus().Type)
}

func TestKeyboardNavigation(t *testing.T) {
	m := newModel(t, nil)
	var focus []defs.ToolType
	m.OnFocusChanged(func(t defs.ToolType) { focus = append(focus, t) })

	assert.True(t, m.HandleKey(keyPress("up")))
	assert.Equal(t, defs.ToolTypeWelcome, m.Focus().Type, "focus stays at the top")

	m.HandleKey(keyPress("down"))
	m.HandleKey(keyPress("j"))
	assert.Equal(t, defs.ToolTypeNetwork, m.Focus().Type)
	assert.Equal(t, defs.ToolTypeWelcome, m.Type())

	assert.True(t, m.HandleKey(keyPress(" ")))
	assert.Equal(t, defs.ToolTypeNetwork, m.Type())
	assert.Equal(t, []defs.ToolType{defs.ToolTypeMedia, defs.ToolTypeNetwork}, focus)

	assert.False(t, m.HandleKey(keyPress("x")))
}
