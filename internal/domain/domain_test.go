package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectValidate(t *testing.T) {
	assert.Error(t, (&Project{Name: "no id"}).Validate())
	assert.Error(t, (&Project{ID: "P-1001"}).Validate())
	assert.NoError(t, (&Project{ID: "P-1001", Name: "East Campus"}).Validate())
}

func TestFieldDefs(t *testing.T) {
	co := FieldDefs(KindChangeOrder)
	require.NotEmpty(t, co)
	assert.Equal(t, "number", co[0].Key)
	assert.True(t, co[0].Required)

	rfi := FieldDefs(KindRFI)
	require.Len(t, rfi, 3)
	assert.True(t, rfi[1].Multiline)

	// Unknown kinds fall back to the Other schema.
	unknown := FieldDefs(DocKind("punch_list"))
	assert.Equal(t, FieldDefs(KindOther), unknown)
}

func TestDocKindLabel(t *testing.T) {
	assert.Equal(t, "Change Order", KindChangeOrder.Label())
	assert.Equal(t, "RFI", KindRFI.Label())
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("carla@stonebridge.dev"))
	assert.Error(t, ValidateEmail("carla"))
	assert.Error(t, ValidateEmail("carla@stonebridge"))
	assert.Error(t, ValidateEmail("@stonebridge.dev"))
}

func TestDependsOnTask(t *testing.T) {
	task := Task{ID: "t2", DependsOn: []string{"t1"}}
	assert.True(t, task.DependsOnTask("t1"))
	assert.False(t, task.DependsOnTask("t3"))
}

func TestPtrCoalesceHelpers(t *testing.T) {
	assert.Equal(t, "b", CoalesceStr("", "b", "c"))
	assert.Equal(t, "fallback", StrFromPtrWithDefault("fallback", nil))

	n := 40
	assert.Equal(t, 40, IntFromPtrWithDefault(0, &n))

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	assert.Equal(t, day, TimeFromPtrWithDefault(time.Time{}, &day))

	deps := []string{"t1"}
	assert.Equal(t, deps, StringsFromPtrWithDefault(nil, &deps))
}
