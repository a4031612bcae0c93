package dialogs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type record struct {
	Name  string
	Value int
}

func newRecordEditor() *Editor[record] {
	return NewEditor(
		func(a, b record) bool { return a == b },
		nil,
		func(r record) error {
			if r.Name == "" {
				return errors.New("name is empty")
			}
			return nil
		},
	)
}

func TestEditor_ApplyRequiresChangesAndValidData(t *testing.T) {
	e := newRecordEditor()
	e.Load(record{Name: "a", Value: 1})
	assert.False(t, e.Differs())
	assert.False(t, e.CanApply())

	e.SetData(record{Name: "a", Value: 2})
	assert.True(t, e.Differs())
	assert.True(t, e.CanApply())

	e.SetData(record{Value: 2})
	assert.True(t, e.Differs())
	assert.Error(t, e.Err())
	assert.False(t, e.CanApply())
}

func TestEditor_Reset(t *testing.T) {
	e := newRecordEditor()
	e.Load(record{Name: "a", Value: 1})
	e.SetData(record{Name: "b", Value: 1})

	e.Reset()
	assert.Equal(t, record{Name: "a", Value: 1}, e.Data())
	assert.False(t, e.Differs())
}

func TestEditor_ChangeNotifications(t *testing.T) {
	e := newRecordEditor()
	var seen []bool
	e.OnChanged(func(differs bool) { seen = append(seen, differs) })

	e.Load(record{Name: "a"})
	e.SetData(record{Name: "b"})
	e.Reset()
	assert.Equal(t, []bool{false, true, false}, seen)
}

func TestEditor_ClonesMaps(t *testing.T) {
	e := NewEditor(
		func(a, b map[string]string) bool { return len(a) == len(b) && a["k"] == b["k"] },
		func(m map[string]string) map[string]string {
			out := make(map[string]string, len(m))
			for k, v := range m {
				out[k] = v
			}
			return out
		},
		nil,
	)
	src := map[string]string{"k": "v"}
	e.Load(src)
	src["k"] = "changed"

	assert.Equal(t, "v", e.Loaded()["k"])
	d := e.Data()
	d["k"] = "edited"
	assert.False(t, e.Differs())
}
