package sharing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartnerPayment(t *testing.T) {
	payer := uuid.New()
	receiver := uuid.New()

	t.Run("payer records own payment", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, payment.Status)
		assert.Equal(t, payer, payment.CreatedByTenantID)
	})

	t.Run("receiver records payment on behalf of payer", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, receiver, uuid.New(), decimal.NewFromInt(50000), PaymentMethodTransfer, "")
		require.NoError(t, err)
		assert.Equal(t, receiver, payment.CreatedByTenantID)
	})

	t.Run("creator must be a party", func(t *testing.T) {
		_, err := NewPartnerPayment(payer, receiver, uuid.New(), uuid.New(), decimal.NewFromInt(1), PaymentMethodCash, "")
		assert.Error(t, err)
	})

	t.Run("payer equals receiver", func(t *testing.T) {
		_, err := NewPartnerPayment(payer, payer, payer, uuid.New(), decimal.NewFromInt(1), PaymentMethodCash, "")
		assert.Error(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.Zero, PaymentMethodCash, "")
		assert.Error(t, err)
	})
}

func TestPartnerPayment_Confirm(t *testing.T) {
	payer := uuid.New()
	receiver := uuid.New()

	t.Run("counterparty confirms and is stamped on the payment", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
		require.NoError(t, err)

		assert.True(t, payment.CanConfirm(receiver))
		assert.False(t, payment.CanConfirm(payer))

		confirmer := uuid.New()
		require.NoError(t, payment.Confirm(receiver, confirmer))
		assert.Equal(t, PaymentStatusConfirmed, payment.Status)
		assert.NotNil(t, payment.RespondedAt)
		require.NotNil(t, payment.ConfirmedByUserID)
		assert.Equal(t, confirmer, *payment.ConfirmedByUserID)
	})

	t.Run("creator cannot self-confirm", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
		require.NoError(t, err)

		assert.Error(t, payment.Confirm(payer, uuid.New()))
		assert.Equal(t, PaymentStatusPending, payment.Status)
		assert.Nil(t, payment.ConfirmedByUserID)
	})

	t.Run("creator cannot self-confirm even as receiver", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, receiver, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
		require.NoError(t, err)

		assert.Error(t, payment.Confirm(receiver, uuid.New()))
		require.NoError(t, payment.Confirm(payer, uuid.New()))
	})

	t.Run("outsider cannot confirm", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
		require.NoError(t, err)

		assert.Error(t, payment.Confirm(uuid.New(), uuid.New()))
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		payment, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
		require.NoError(t, err)
		require.NoError(t, payment.Confirm(receiver, uuid.New()))

		assert.Error(t, payment.Confirm(receiver, uuid.New()))
		assert.False(t, payment.CanConfirm(receiver))
	})
}

func TestPartnerPayment_Reject(t *testing.T) {
	payer := uuid.New()
	receiver := uuid.New()

	payment, err := NewPartnerPayment(payer, receiver, payer, uuid.New(), decimal.NewFromInt(50000), PaymentMethodCash, "")
	require.NoError(t, err)

	assert.Error(t, payment.RejectPayment(payer, "I never sent this"))

	require.NoError(t, payment.RejectPayment(receiver, "never arrived"))
	assert.Equal(t, PaymentStatusRejected, payment.Status)
	assert.Equal(t, "never arrived", payment.RejectReason)
}

func TestPartnerNotification_MarkRead(t *testing.T) {
	notification, err := NewPartnerNotification(
		uuid.New(), uuid.New(),
		NotificationTransferIncoming, ReferenceTransfer, uuid.New(), "Incoming transfer CT-20260831-001",
	)
	require.NoError(t, err)
	assert.False(t, notification.IsRead)

	notification.MarkRead()
	assert.True(t, notification.IsRead)
	require.NotNil(t, notification.ReadAt)

	firstReadAt := *notification.ReadAt
	notification.MarkRead()
	assert.Equal(t, firstReadAt, *notification.ReadAt)
}
