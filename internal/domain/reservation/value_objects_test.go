//go:build unit

package reservation_test

import (
	"strings"
	"testing"

	"venue-scheduler/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		d, err := reservation.ParseDate("2026-10-12")
		require.NoError(t, err)
		assert.Equal(t, "2026-10-12", d.String())
		assert.False(t, d.IsZero())
	})

	t.Run("前後の空白はトリムされる", func(t *testing.T) {
		d, err := reservation.ParseDate("  2026-10-12  ")
		require.NoError(t, err)
		assert.Equal(t, "2026-10-12", d.String())
	})

	cases := []struct {
		name  string
		input string
	}{
		{name: "空文字列NG", input: ""},
		{name: "スラッシュ区切りNG", input: "2026/10/12"},
		{name: "存在しない日付NG", input: "2026-02-30"},
		{name: "日付以外の文字列NG", input: "next tuesday"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.ParseDate(c.input)
			assert.ErrorIs(t, err, reservation.ErrInvalidDate)
		})
	}
}

func TestNewPartyName(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := reservation.NewPartyName("Sato wedding party")
		require.NoError(t, err)
		assert.Equal(t, "Sato wedding party", p.Value())
	})

	t.Run("空の名前NG", func(t *testing.T) {
		_, err := reservation.NewPartyName("   ")
		assert.ErrorIs(t, err, reservation.ErrInvalidPartyName)
	})
}

func TestNewDebitCard(t *testing.T) {
	cases := []struct {
		name       string
		number     string
		expiration string
		cvv        string
		errIs      error
	}{
		{name: "基本成功ケース", number: "4111 1111 1111 1111", expiration: "12/27", cvv: "123"},
		{name: "区切り文字入り番号OK", number: "4111-1111-1111-1111", expiration: "12/27", cvv: "9"},
		{name: "番号なしNG", number: "", expiration: "12/27", cvv: "123", errIs: reservation.ErrMissingCardDetails},
		{name: "有効期限なしNG", number: "4111111111111111", expiration: "", cvv: "123", errIs: reservation.ErrMissingCardDetails},
		{name: "CVVなしNG", number: "4111111111111111", expiration: "12/27", cvv: "", errIs: reservation.ErrMissingCardDetails},
		{name: "20桁番号OK", number: strings.Repeat("4", 20), expiration: "12/27", cvv: "123"},
		{name: "21桁番号NG", number: strings.Repeat("4", 21), expiration: "12/27", cvv: "123", errIs: reservation.ErrCardNumberTooLong},
		{name: "区切り文字は桁数に含めない", number: strings.Repeat("4 ", 20), expiration: "12/27", cvv: "123"},
		{name: "4桁CVVNG", number: "4111111111111111", expiration: "12/27", cvv: "1234", errIs: reservation.ErrInvalidCVV},
		{name: "数字以外のCVVNG", number: "4111111111111111", expiration: "12/27", cvv: "1a3", errIs: reservation.ErrInvalidCVV},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := reservation.NewDebitCard(c.number, c.expiration, c.cvv)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewPaymentMethod(t *testing.T) {
	t.Run("現金OK", func(t *testing.T) {
		m, err := reservation.NewPaymentMethod("cash")
		require.NoError(t, err)
		assert.Equal(t, reservation.PaymentCash, m)
	})

	t.Run("デビットOK", func(t *testing.T) {
		m, err := reservation.NewPaymentMethod("debit")
		require.NoError(t, err)
		assert.Equal(t, reservation.PaymentDebit, m)
	})

	t.Run("クレジットNG", func(t *testing.T) {
		_, err := reservation.NewPaymentMethod("credit")
		assert.ErrorIs(t, err, reservation.ErrInvalidPaymentMethod)
	})
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "denied"} {
		t.Run(s+" OK", func(t *testing.T) {
			status, err := reservation.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		})
	}

	t.Run("未知のステータスNG", func(t *testing.T) {
		_, err := reservation.NewStatus("cancelled")
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}
