package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject
	inits    int
	destroys int
	updates  int
	onUpdate func() error
}

func newCountingObject(id string, zIndex int) *countingObject {
	return &countingObject{BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex})}
}

func (o *countingObject) Init() error    { o.inits++; return nil }
func (o *countingObject) Destroy() error { o.destroys++; return nil }
func (o *countingObject) Update() error {
	o.updates++
	if o.onUpdate != nil {
		return o.onUpdate()
	}
	return nil
}

func TestBaseObject_children(t *testing.T) {
	root := NewBaseObject("root", nil)
	a := newCountingObject("a", 0)
	b := newCountingObject("b", 0)

	require.NoError(t, root.AddChild("a", a))
	require.NoError(t, root.AddChild("b", b))
	assert.Error(t, root.AddChild("a", a))

	assert.Equal(t, 1, a.inits)
	assert.Same(t, a, root.GetChild("a"))
	assert.Equal(t, []GameObject{a, b}, root.GetChildren())

	require.NoError(t, root.RemoveChild("a"))
	assert.Equal(t, 1, a.destroys)
	assert.Nil(t, a.GetParent())
	assert.Nil(t, root.GetChild("a"))
	assert.Error(t, root.RemoveChild("a"))
	assert.Error(t, a.RemoveFromParent())
}

func TestSortedZIndexObject(t *testing.T) {
	root := NewSortedZIndexObject("root")
	top := newCountingObject("top", 10)
	bottom := newCountingObject("bottom", -1)
	middle1 := newCountingObject("middle1", 5)
	middle2 := newCountingObject("middle2", 5)

	for _, obj := range []*countingObject{top, bottom, middle1, middle2} {
		require.NoError(t, root.AddChild(obj.GetID(), obj))
	}

	assert.Equal(t, []GameObject{bottom, middle1, middle2, top}, root.GetChildren())

	require.NoError(t, root.RemoveChild("middle1"))
	assert.Equal(t, []GameObject{bottom, middle2, top}, root.GetChildren())
	assert.Equal(t, 1, middle1.destroys)
}

func TestUpdateTree_childRemovesItself(t *testing.T) {
	root := NewSortedZIndexObject("root")
	a := newCountingObject("a", 0)
	b := newCountingObject("b", 1)
	a.onUpdate = func() error { return a.RemoveFromParent() }

	require.NoError(t, root.AddChild("a", a))
	require.NoError(t, root.AddChild("b", b))

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, 1, b.updates)
	assert.Equal(t, []GameObject{b}, root.GetChildren())
}

func TestTextEffect_expires(t *testing.T) {
	root := NewSortedZIndexObject("root")
	effect := NewTextEffect("hit", NewTextEffectOptions{Text: "-1", Y: 100, Scroll: true, TTL: 50})
	require.NoError(t, root.AddChild("hit", effect))

	for i := 0; i < 10 && len(root.GetChildren()) > 0; i++ {
		require.NoError(t, UpdateTree(root))
	}
	assert.Empty(t, root.GetChildren())
	assert.Less(t, effect.y, 100.0)
}
