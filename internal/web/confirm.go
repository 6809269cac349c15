package web

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"productos-admin/internal/console"
)

const pendingDeleteKey = "pending_delete"

// rememberPendingDelete marks id as the product whose delete dialog is open.
func rememberPendingDelete(c *gin.Context, id string) error {
	sess := sessions.Default(c)
	sess.Set(pendingDeleteKey, id)
	return sess.Save()
}

// sessionConfirmer answers yes only when the operator pressed the confirm
// button of the dialog opened for this same id. The pending mark is consumed
// either way.
type sessionConfirmer struct {
	c  *gin.Context
	id string
}

func (s sessionConfirmer) Confirm(_ context.Context, p console.Prompt) bool {
	sess := sessions.Default(s.c)
	pending, _ := sess.Get(pendingDeleteKey).(string)
	sess.Delete(pendingDeleteKey)
	_ = sess.Save()

	return pending != "" && pending == s.id && s.c.PostForm("confirm") == p.ConfirmText
}
