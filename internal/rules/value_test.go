package rules

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueUnmarshalMixedScalars(t *testing.T) {
	var list ValueList
	require.NoError(t, json.Unmarshal([]byte(`[7, "7", 99.95, true, false, "used"]`), &list))
	assert.Equal(t, ValueList{"7", "7", "99.95", "1", "0", "used"}, list)
}

func TestValueUnmarshalRejectsCompound(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))
}

func TestValueLooseEquality(t *testing.T) {
	assert.True(t, Value("100").Equal(Value("100")))
	assert.True(t, Value("100").Equal(Value("100.0")))
	assert.True(t, Value("99.95").Equal(Value("99.950")))
	assert.False(t, Value("100").Equal(Value("101")))
	assert.False(t, Value("used").Equal(Value("new")))
	// non-numeric strings only match exactly
	assert.False(t, Value("used").Equal(Value("USED")))
}

func TestValueListContains(t *testing.T) {
	list := ValueList{"7", "8", "99.95"}
	assert.True(t, list.Contains("8"))
	assert.True(t, list.Contains("99.950"))
	assert.False(t, list.Contains("9"))
	assert.False(t, ValueList(nil).Contains("7"))
}
