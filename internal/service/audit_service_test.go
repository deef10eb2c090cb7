package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditServiceWritesStructuredEntries(t *testing.T) {
	log, hook := test.NewNullLogger()
	audit := NewAuditService(log)
	ctx := context.Background()

	audit.LogCreate(ctx, "ann", "appointment", "7", map[string]string{"status": "BOOKED"})
	audit.LogUpdate(ctx, "dee", "appointment", "7", map[string]string{"status": "COMPLETED"})
	audit.LogDelete(ctx, "admin", "patient", "3")

	entries := hook.AllEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, AuditActionCreate, entries[0].Data["action"])
	assert.Equal(t, "ann", entries[0].Data["actor"])

	assert.Equal(t, AuditActionUpdate, entries[1].Data["action"])
	assert.Equal(t, "7", entries[1].Data["entity_id"])

	assert.Equal(t, AuditActionDelete, entries[2].Data["action"])
	assert.Equal(t, "patient", entries[2].Data["entity"])
	_, hasValue := entries[2].Data["new_value"]
	assert.False(t, hasValue)
}
