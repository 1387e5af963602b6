package yabytes_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yabytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestBytes_Format(t *testing.T) {
	t.Parallel()

	size, err := yabytes.Parse("2344Ki")
	require.Nil(t, err)

	assert.Equal(t, "2344Ki", size.Format(yabytes.Kibibyte))
	assert.Equal(t, "2400256", size.Format(yabytes.Byte))
	assert.Equal(t, "2Mi", size.Format(yabytes.Mebibyte))
	assert.Equal(t, "2400K", size.Format(yabytes.Kilobyte))
	assert.Equal(t, int64(2), size.Convert(yabytes.Megabyte))
}

func TestBytes_RoundTripPerUnit(t *testing.T) {
	t.Parallel()

	for _, unit := range yabytes.Units() {
		for _, n := range []int64{0, 1, 7, 1023, 2344} {
			value := strconv.FormatInt(n, 10) + unit.Suffix()

			size, err := yabytes.Parse(value)
			require.Nil(t, err, value)

			assert.Equal(t, value, size.Format(unit), value)
			assert.Equal(t, strconv.FormatInt(n*unit.Factor(), 10), size.Format(yabytes.Byte), value)
		}
	}
}

func TestParse_PlainInteger(t *testing.T) {
	t.Parallel()

	size, err := yabytes.Parse("512")
	require.Nil(t, err)
	assert.Equal(t, int64(512), size.Int64())

	size, err = yabytes.Parse("-3")
	require.Nil(t, err)
	assert.Equal(t, int64(-3), size.Int64())
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value string
		want  error
	}{
		{"", yabytes.ErrInvalidFormat},
		{"Ki", yabytes.ErrInvalidFormat},
		{"1.5Gi", yabytes.ErrInvalidFormat},
		{"12 Ki", yabytes.ErrInvalidFormat},
		{"12Ki5", yabytes.ErrInvalidFormat},
		{"12KB", yabytes.ErrUnknownUnit},
		{"12ki", yabytes.ErrUnknownUnit},
		{"9000000000Gi", yabytes.ErrOverflow},
		{"99999999999999999999", yabytes.ErrInvalidFormat},
	}

	for _, tc := range cases {
		_, err := yabytes.Parse(tc.value)
		require.NotNil(t, err, tc.value)
		assert.ErrorIs(t, err, tc.want, tc.value)
		assert.Equal(t, http.StatusBadRequest, err.Code(), tc.value)
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	unit, err := yabytes.ParseUnit("Ti")
	require.Nil(t, err)
	assert.Equal(t, yabytes.Tebibyte, unit)
	assert.Equal(t, int64(1099511627776), unit.Factor())

	unit, err = yabytes.ParseUnit("")
	require.Nil(t, err)
	assert.Equal(t, yabytes.Byte, unit)

	_, err = yabytes.ParseUnit("Pi")
	assert.ErrorIs(t, err, yabytes.ErrUnknownUnit)
}

func TestUnits_IsCopy(t *testing.T) {
	t.Parallel()

	units := yabytes.Units()
	require.Len(t, units, 9)

	units[0] = yabytes.Terabyte

	assert.Equal(t, yabytes.Byte, yabytes.Units()[0])
}

func TestBytes_Humanize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.3 MiB", yabytes.MustParse("2344Ki").Humanize())
	assert.Equal(t, "1.0 KiB", yabytes.New(1024).Humanize())
	assert.Equal(t, "-1.0 KiB", yabytes.New(-1024).Humanize())
}

func TestEncoding_RoundTrip(t *testing.T) {
	t.Parallel()

	type limits struct {
		Memory yabytes.Bytes `json:"memory" msgpack:"memory"`
	}

	var fromJSON limits
	require.NoError(t, json.Unmarshal([]byte(`{"memory":"512Mi"}`), &fromJSON))
	assert.Equal(t, yabytes.MustParse("512Mi"), fromJSON.Memory)

	raw, err := json.Marshal(fromJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"memory":"536870912"}`, string(raw))

	packed, err := msgpack.Marshal(fromJSON)
	require.NoError(t, err)

	var fromMsgpack limits
	require.NoError(t, msgpack.Unmarshal(packed, &fromMsgpack))
	assert.Equal(t, fromJSON, fromMsgpack)

	assert.Error(t, json.Unmarshal([]byte(`{"memory":"lots"}`), &fromJSON))
}
