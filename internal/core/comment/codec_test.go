package comment

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_WireFormat(t *testing.T) {
	at := time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)
	list := []Comment{
		{ID: 1757332800000, Author: "Ana", Message: "Hola a todos", CreatedAt: at, IsNew: true},
	}

	data, err := Serialize(list)
	require.NoError(t, err)

	want := `[{"id":1757332800000,"name":"Ana","message":"Hola a todos","timestamp":"2025-09-08T12:00:00.000Z","isNew":false}]`
	assert.JSONEq(t, want, string(data))
}

func TestSerialize_ConvertsToUTC(t *testing.T) {
	madrid := time.FixedZone("CEST", 2*60*60)
	at := time.Date(2025, 9, 8, 14, 30, 0, 250*int(time.Millisecond), madrid)

	data, err := Serialize([]Comment{{ID: 1, Author: "a", Message: "m", CreatedAt: at}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"timestamp":"2025-09-08T12:30:00.250Z"`)
}

func TestRoundTrip_ClearsIsNew(t *testing.T) {
	base := time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)
	list := []Comment{
		{ID: 3, Author: "Ana", Message: "tercero", CreatedAt: base.Add(2 * time.Minute), IsNew: true},
		{ID: 2, Author: "Luis", Message: "segundo <b>bold</b>", CreatedAt: base.Add(time.Minute)},
		{ID: 1, Author: "Marta", Message: "primero", CreatedAt: base.Add(123 * time.Millisecond), IsNew: true},
	}

	data, err := Serialize(list)
	require.NoError(t, err)

	got, err := Deserialize(data)
	require.NoError(t, err)

	want := make([]Comment, len(list))
	for i, c := range list {
		c.IsNew = false
		want[i] = c
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserialize_AcceptsTimestampsWithoutMillis(t *testing.T) {
	got, err := Deserialize([]byte(`[{"id":7,"name":"a","message":"m","timestamp":"2025-09-08T12:00:00Z","isNew":true}]`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsNew)
	assert.True(t, got[0].CreatedAt.Equal(time.Date(2025, 9, 8, 12, 0, 0, 0, time.UTC)))
}

func TestDeserialize_Failures(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"id":1}`},
		{"bad timestamp", `[{"id":1,"name":"a","message":"m","timestamp":"yesterday"}]`},
		{"missing timestamp", `[{"id":1,"name":"a","message":"m"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDeserialize_Null(t *testing.T) {
	got, err := Deserialize([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, got)
}
