package objwrap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhd2015/mockwire/runtime/lookup"
)

func TestReadIndirectFieldValue(t *testing.T) {
	wheel := &Wheel{Size: 15}
	o := Wrap(&Component{wheels: &staticProvider[*Wheel]{v: wheel}})

	f, ok := o.FindIndirectFieldByType(TypeOf[*Wheel]())
	require.True(t, ok)
	assert.Equal(t, "wheels", f.Name())
	assert.Equal(t, lookup.IndirectionMethod, f.Kind)

	val, ok, err := o.ReadIndirectFieldValue(TypeOf[*Wheel]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, wheel, val)
}

func TestReadIndirectFieldValueNilProducer(t *testing.T) {
	o := Wrap(&Component{})
	val, ok, err := o.ReadIndirectFieldValue(TypeOf[*Wheel]())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)

	val, ok, err = o.ReadIndirectFieldValue(TypeOf[*Gauge]())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestReadIndirectFieldValueAbsent(t *testing.T) {
	_, ok := Wrap(&Component{}).FindIndirectFieldByType(TypeOf[*Car]())
	assert.False(t, ok)

	_, ok, err := Wrap(&Component{}).ReadIndirectFieldValue(TypeOf[*Car]())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadIndirectFieldValueFunc(t *testing.T) {
	gauge := &Gauge{}
	o := Wrap(&Component{gauge: func() (*Gauge, error) { return gauge, nil }})
	val, ok, err := o.ReadIndirectFieldValue(TypeOf[*Gauge]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, gauge, val)
}

func TestReadIndirectFieldValueNamedFunc(t *testing.T) {
	wheel := &Wheel{Size: 17}
	o := Wrap(&lazyHolder{wheel: Lazy[*Wheel](func() *Wheel { return wheel })})

	f, ok := o.FindIndirectFieldByType(TypeOf[*Wheel]())
	require.True(t, ok)
	assert.Equal(t, "wheel", f.Name())
	assert.Equal(t, lookup.IndirectionFunc, f.Kind)

	val, ok, err := o.ReadIndirectFieldValue(TypeOf[*Wheel]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, wheel, val)

	val, err = o.GetValueByTypeOrIndirection(TypeOf[*Wheel]())
	require.NoError(t, err)
	assert.Same(t, wheel, val)
}

func TestReadIndirectFieldValueByTypeArg(t *testing.T) {
	engine := &Engine{Power: 90}
	o := Wrap(&lazyHolder{
		engine: Ref[*Engine]{v: engine},
		gauge:  Ref[*Gauge]{v: &Radio{}},
	})

	f, ok := o.FindIndirectFieldByType(TypeOf[*Engine]())
	require.True(t, ok)
	assert.Equal(t, "engine", f.Name())
	assert.Equal(t, lookup.IndirectionMethod, f.Kind)
	assert.Equal(t, TypeOf[*Engine](), f.Inner)

	val, err := o.GetValueByTypeOrIndirection(TypeOf[*Engine]())
	require.NoError(t, err)
	assert.Same(t, engine, val)

	// the type argument says *Gauge, the value held is a *Radio
	_, _, err = o.ReadIndirectFieldValue(TypeOf[*Gauge]())
	assert.ErrorIs(t, err, ErrAccess)
	assert.Contains(t, err.Error(), "gave *objwrap.Radio, not *objwrap.Gauge")

	_, ok = o.FindIndirectFieldByType(TypeOf[*Car]())
	assert.False(t, ok)
}

func TestReadIndirectFieldValueFailures(t *testing.T) {
	failing := Wrap(&Component{gauge: func() (*Gauge, error) { return nil, errNoEngine }})
	_, _, err := failing.ReadIndirectFieldValue(TypeOf[*Gauge]())
	assert.ErrorIs(t, err, ErrInvocation)
	assert.ErrorIs(t, err, errNoEngine)

	panicking := Wrap(&Component{wheels: &staticProvider[*Wheel]{explode: true}})
	_, _, err = panicking.ReadIndirectFieldValue(TypeOf[*Wheel]())
	assert.ErrorIs(t, err, ErrInvocation)
	var perr *PanicError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "provider exploded", perr.Value)
}

func TestWithResolveMethod(t *testing.T) {
	radio := &Radio{}
	c := &Component{radio: &staticProvider[*Radio]{v: radio}}

	_, ok, err := Wrap(c).ReadIndirectFieldValue(TypeOf[*Radio]())
	require.NoError(t, err)
	assert.False(t, ok)

	val, ok, err := Wrap(c, WithResolveMethod("Resolve")).ReadIndirectFieldValue(TypeOf[*Radio]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, radio, val)
}

func TestGetValueByTypeOrIndirection(t *testing.T) {
	engine := &Engine{}
	wheel := &Wheel{}
	o := Wrap(&Component{
		engine: engine,
		wheels: &staticProvider[*Wheel]{v: wheel},
	})

	val, err := o.GetValueByTypeOrIndirection(TypeOf[*Engine]())
	require.NoError(t, err)
	assert.Same(t, engine, val)

	val, err = o.GetValueByTypeOrIndirection(TypeOf[*Wheel]())
	require.NoError(t, err)
	assert.Same(t, wheel, val)

	_, err = o.GetValueByTypeOrIndirection(TypeOf[*Car]())
	assert.ErrorIs(t, err, ErrLookup)
	assert.Contains(t, err.Error(), "*objwrap.Car field not found in *objwrap.Component")
}

func TestGetValueByTypeOrIndirectionNilDirect(t *testing.T) {
	// a nil direct field and a nil producer: nothing to return
	_, err := Wrap(&Component{}).GetValueByTypeOrIndirection(TypeOf[*Engine]())
	assert.ErrorIs(t, err, ErrLookup)

	_, err = Wrap(&Component{}).GetValueByTypeOrIndirection(TypeOf[*Gauge]())
	assert.ErrorIs(t, err, ErrLookup)
}

func TestIndirectionLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	o := Wrap(&Component{wheels: &staticProvider[*Wheel]{v: &Wheel{}}}, WithLogger(logger))

	_, ok, err := o.ReadIndirectFieldValue(TypeOf[*Wheel]())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, buf.String(), "resolved producer")
	assert.Contains(t, buf.String(), `"field":"wheels"`)
}
