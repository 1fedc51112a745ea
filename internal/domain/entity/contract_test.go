package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContractStatus_CanTransition(t *testing.T) {
	assert.True(t, ContractDraft.CanTransition(ContractPendingSignature))
	assert.True(t, ContractPendingSignature.CanTransition(ContractSigned))
	assert.True(t, ContractPendingSignature.CanTransition(ContractExpired))

	assert.False(t, ContractSigned.CanTransition(ContractPendingSignature))
	assert.False(t, ContractSigned.CanTransition(ContractSigned))
	assert.False(t, ContractExpired.CanTransition(ContractSigned))
	assert.False(t, ContractDraft.CanTransition(ContractSigned))
}

func TestContract_EffectiveStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.Equal(t, ContractExpired, (&Contract{Status: ContractPendingSignature, ExpiresAt: &past}).EffectiveStatus(now))
	assert.Equal(t, ContractPendingSignature, (&Contract{Status: ContractPendingSignature, ExpiresAt: &future}).EffectiveStatus(now))
	assert.Equal(t, ContractPendingSignature, (&Contract{Status: ContractPendingSignature}).EffectiveStatus(now))
	assert.Equal(t, ContractSigned, (&Contract{Status: ContractSigned, ExpiresAt: &past}).EffectiveStatus(now))
}

func TestContract_StorageKeys(t *testing.T) {
	c := &Contract{ID: "abc"}
	assert.Equal(t, "contracts/abc.pdf", c.StorageKey())
	assert.Equal(t, "contracts/abc_signed.pdf", c.SignedStorageKey())
}
