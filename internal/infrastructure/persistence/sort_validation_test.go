package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	cases := map[string]string{
		"":                 "DESC",
		"ASC":              "ASC",
		"  asc  ":          "ASC",
		"desc":             "DESC",
		"sideways":         "DESC",
		"ASC; DROP TABLE cross_tenant_transfers;--": "DESC",
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidateSortOrder(in), "input %q", in)
	}
}

func TestValidateSortField(t *testing.T) {
	t.Run("whitelisted fields pass through", func(t *testing.T) {
		assert.Equal(t, "transfer_number", ValidateSortField("transfer_number", TransferSortFields, "created_at"))
		assert.Equal(t, "amount", ValidateSortField(" amount ", PaymentSortFields, "created_at"))
	})

	t.Run("everything else becomes the default", func(t *testing.T) {
		inputs := []string{
			"",
			"   ",
			"no_such_column",
			"STATUS",
			"status; DROP TABLE partner_payments;--",
			"status' OR '1'='1",
			"status UNION SELECT password FROM users",
			"status, (SELECT 1)",
		}
		for _, in := range inputs {
			assert.Equal(t, "created_at", ValidateSortField(in, PartnershipSortFields, "created_at"), "input %q", in)
		}
	})
}

func TestSortFieldWhitelists(t *testing.T) {
	// Every listable sharing entity sorts by the audit columns at least
	for name, fields := range map[string]map[string]bool{
		"transfers":     TransferSortFields,
		"payments":      PaymentSortFields,
		"notifications": NotificationSortFields,
		"partnerships":  PartnershipSortFields,
	} {
		assert.True(t, fields["id"], name)
		assert.True(t, fields["created_at"], name)
		assert.True(t, fields["updated_at"], name)
	}

	assert.True(t, TransferSortFields["transfer_number"])
	assert.True(t, PaymentSortFields["amount"])
	assert.True(t, NotificationSortFields["is_read"])
	assert.True(t, PartnershipSortFields["responded_at"])
}
