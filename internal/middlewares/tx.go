package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The response is held back until the transaction is finished: it is committed when
// the handler answers below 400 and rolled back otherwise. A failed commit replaces
// the held response with 500. Callbacks registered with OnCommit run only after a
// successful commit.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			bw := &bufferedResponseWriter{ResponseWriter: w}

			next.ServeHTTP(bw, r.WithContext(setTxToContext(r.Context(), state)))

			if bw.status() >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction",
					"request_id", GetRequestIDFromContext(r.Context()),
					"error", err,
				)
				writeCommitFailure(w)
				return
			}

			bw.flush()
			for _, fn := range state.onCommit {
				fn()
			}
		})
	}
}

// writeCommitFailure drops whatever headers the handler prepared and answers 500.
func writeCommitFailure(w http.ResponseWriter) {
	h := w.Header()
	for k := range h {
		delete(h, k)
	}
	h.Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
}

// bufferedResponseWriter holds the status and body until flush.
// Headers go straight to the underlying writer's header map.
type bufferedResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedResponseWriter) WriteHeader(code int) {
	if bw.statusCode == 0 {
		bw.statusCode = code
	}
}

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) {
	if bw.statusCode == 0 {
		bw.statusCode = http.StatusOK
	}
	return bw.body.Write(b)
}

func (bw *bufferedResponseWriter) status() int {
	if bw.statusCode == 0 {
		return http.StatusOK
	}
	return bw.statusCode
}

func (bw *bufferedResponseWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.status())
	if bw.body.Len() > 0 {
		if _, err := bw.ResponseWriter.Write(bw.body.Bytes()); err != nil {
			logger.Log.Errorw("failed to write response", "error", err)
		}
	}
}

type txState struct {
	tx       *sqlx.Tx
	onCommit []func()
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txKey, state)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// OnCommit runs fn once the request transaction in ctx has been committed.
// fn is dropped if the transaction is rolled back or the commit fails.
// Without a transaction in ctx, fn runs immediately.
func OnCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn()
		return
	}
	state.onCommit = append(state.onCommit, fn)
}
