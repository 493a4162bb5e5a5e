package reservation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldChange struct {
	field Field
	value any
}

func TestDefaultDraft(t *testing.T) {
	assert.Equal(t, Draft{
		Name:            "",
		Phone:           "",
		NumberOfPeople:  1,
		Smoking:         false,
		DateTime:        "",
		SpecialRequests: "",
	}, DefaultDraft())
}

func TestDraft_ApplyLastWriteWins(t *testing.T) {
	tests := []struct {
		name    string
		changes []fieldChange
		want    Draft
	}{
		{
			name:    "no events keeps defaults",
			changes: nil,
			want:    DefaultDraft(),
		},
		{
			name: "single field leaves others at default",
			changes: []fieldChange{
				{FieldPhone, "555"},
			},
			want: Draft{Phone: "555", NumberOfPeople: 1},
		},
		{
			name: "repeated field takes last value",
			changes: []fieldChange{
				{FieldName, "A"},
				{FieldNumberOfPeople, 4},
				{FieldName, "An"},
				{FieldName, "Ana"},
				{FieldNumberOfPeople, "2"},
			},
			want: Draft{Name: "Ana", NumberOfPeople: 2},
		},
		{
			name: "every field",
			changes: []fieldChange{
				{FieldName, "Ana"},
				{FieldPhone, "555"},
				{FieldNumberOfPeople, 2},
				{FieldSmoking, true},
				{FieldDateTime, "2023-05-01T19:00"},
				{FieldSpecialRequests, "window seat"},
				{FieldSmoking, false},
			},
			want: Draft{
				Name:            "Ana",
				Phone:           "555",
				NumberOfPeople:  2,
				Smoking:         false,
				DateTime:        "2023-05-01T19:00",
				SpecialRequests: "window seat",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DefaultDraft()
			for _, c := range tt.changes {
				var err error
				d, err = d.Apply(c.field, c.value)
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDraft_ApplyDoesNotMutateReceiver(t *testing.T) {
	orig := DefaultDraft()
	next, err := orig.Apply(FieldName, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "", orig.Name)
	assert.Equal(t, "Ana", next.Name)
}

func TestDraft_ApplyRejects(t *testing.T) {
	d := Draft{Name: "Ana", NumberOfPeople: 3}
	tests := []struct {
		name    string
		field   Field
		value   any
		wantErr error
	}{
		{"unknown field", Field("email"), "a@b.c", ErrUnknownField},
		{"string field with int", FieldName, 3, ErrInvalidValue},
		{"smoking with string", FieldSmoking, "on", ErrInvalidValue},
		{"party size zero", FieldNumberOfPeople, 0, ErrInvalidValue},
		{"party size nine", FieldNumberOfPeople, 9, ErrInvalidValue},
		{"party size text", FieldNumberOfPeople, "many", ErrInvalidValue},
		{"party size float", FieldNumberOfPeople, 2.0, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Apply(tt.field, tt.value)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, d, got, "draft must be unchanged on error")
		})
	}
}

func TestPartySizeOptions(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, PartySizeOptions())
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseField("party")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDraft_Missing(t *testing.T) {
	assert.Equal(t, []Field{FieldName, FieldPhone, FieldDateTime}, DefaultDraft().Missing())
	assert.Equal(t, []Field{FieldDateTime}, Draft{Name: "Ana", Phone: "555"}.Missing())
	assert.Equal(t, []Field{FieldName}, Draft{Name: "  ", Phone: "x", DateTime: "2023-05-01T19:00"}.Missing())
	assert.Empty(t, Draft{Name: "Ana", Phone: "not-a-phone", DateTime: "whenever"}.Missing())
}

func TestDraft_JSONFieldNames(t *testing.T) {
	d := Draft{Name: "Ana", Phone: "555", NumberOfPeople: 2, DateTime: "2023-05-01T19:00"}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Ana",
		"phone": "555",
		"numberOfPeople": 2,
		"smoking": false,
		"dateTime": "2023-05-01T19:00",
		"specialRequests": ""
	}`, string(data))
}
