package uuid_test

import (
	"testing"

	guuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskline-go/taskline/uuid"
)

func TestNilString(t *testing.T) {
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", uuid.Nil.String())
	assert.Len(t, uuid.Nil.String(), uuid.StringLen)
	assert.True(t, uuid.Nil.IsNil())
}

func TestNewV4RoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := uuid.NewV4()
		got, err := uuid.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
}

func TestNewV4VersionVariant(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := uuid.NewV4()
		assert.EqualValues(t, 4, u.Version())
		assert.EqualValues(t, 0b10, u.Variant())
		assert.False(t, u.IsNil())
	}
}

func TestNewV4Unique(t *testing.T) {
	seen := make(map[uuid.UUID]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		u := uuid.NewV4()
		_, dup := seen[u]
		require.False(t, dup, "duplicate UUID after %d generations: %s", i, u)
		seen[u] = struct{}{}
	}
}

func TestParseKnownValue(t *testing.T) {
	u, err := uuid.Parse("fdc314b7-f938-4845-b8d1-95716e4eb762")
	require.NoError(t, err)
	assert.EqualValues(t, 0xfd, u[0])
	assert.EqualValues(t, 0x62, u[15])
	assert.Equal(t, "fdc314b7-f938-4845-b8d1-95716e4eb762", u.String())
}

func TestParseCaseInsensitive(t *testing.T) {
	u, err := uuid.Parse("FDC314B7-F938-4845-B8D1-95716E4EB762")
	require.NoError(t, err)
	assert.Equal(t, "fdc314b7-f938-4845-b8d1-95716e4eb762", u.String())
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		"",
		"not-a-valid-uuid",
		"\xf0\x28\x8c\xbc",
		"fdc314b7-f938-4845-b8d1-95716e4eb76",    // 35 chars
		"fdc314b7-f938-4845-b8d1-95716e4eb7622",  // 37 chars
		"fdc314b7f938-4845-b8d1-95716e4eb762a",   // hyphen misplaced
		"fdc314b7-f938-4845-b8d1-95716e4eb76g",   // non-hex digit
		"fdc314b7 f938-4845-b8d1-95716e4eb762",   // space instead of hyphen
		"{fdc314b7-f938-4845-b8d1-95716e4eb762}", // braced form
		"urn:uuid:fdc314b7-f938-4845-b8d1-9571",  // urn prefix
		"\xf0\x28\x8c\xbc14b7-f938-4845-b8d1-95716e4eb762", // invalid UTF-8, right length
	}
	for _, in := range inputs {
		u, err := uuid.Parse(in)
		assert.ErrorIs(t, err, uuid.ErrParse, "input %q", in)
		assert.Equal(t, uuid.Nil, u, "failed parse must return the nil value, input %q", in)
	}
}

func TestParseBytes(t *testing.T) {
	u, err := uuid.ParseBytes([]byte("fdc314b7-f938-4845-b8d1-95716e4eb762"))
	require.NoError(t, err)
	assert.EqualValues(t, 0xfd, u[0])

	_, err = uuid.ParseBytes([]byte{0xf0, 0x28, 0x8c, 0xbc})
	assert.ErrorIs(t, err, uuid.ErrParse)
}

func TestStringLenAlways36(t *testing.T) {
	assert.Len(t, uuid.Nil.String(), 36)
	for i := 0; i < 100; i++ {
		assert.Len(t, uuid.NewV4().String(), 36)
	}
}

func TestMustParse(t *testing.T) {
	u := uuid.MustParse("fdc314b7-f938-4845-b8d1-95716e4eb762")
	assert.EqualValues(t, 0x62, u[15])
	assert.Panics(t, func() { uuid.MustParse("not-a-valid-uuid") })
}

func TestTextMarshaling(t *testing.T) {
	u := uuid.NewV4()
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, u.String(), string(b))

	var got uuid.UUID
	require.NoError(t, got.UnmarshalText(b))
	assert.Equal(t, u, got)

	prev := got
	assert.ErrorIs(t, got.UnmarshalText([]byte("nope")), uuid.ErrParse)
	assert.Equal(t, prev, got, "receiver must be untouched on failure")
}

// The encoding must agree byte for byte with github.com/google/uuid.
func TestAgreesWithGoogleUUID(t *testing.T) {
	for i := 0; i < 100; i++ {
		u := uuid.NewV4()
		g, err := guuid.Parse(u.String())
		require.NoError(t, err)
		assert.Equal(t, g.String(), u.String())

		theirs := guuid.New()
		ours, err := uuid.Parse(theirs.String())
		require.NoError(t, err)
		assert.Equal(t, [16]byte(theirs), [16]byte(ours))
	}
}
