package chatbotRepository

import (
	contextPkg "CatalogChatbot/pkg/context"
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching substr anywhere, with the
// LIKE wildcards in substr taken literally.
func containsPattern(substr string) string {
	return "%" + likeEscaper.Replace(substr) + "%"
}

func bindNamed(ctx context.Context, q SQLExecutor, log *logrus.Logger, operation, query string, argsKV map[string]interface{}) (string, []interface{}, error) {
	query, args, err := sqlx.Named(query, argsKV)
	if err != nil {
		log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Errorf("%s named query preparation err", operation)
		return "", nil, err
	}

	return q.Rebind(query), args, nil
}

func selectNamed(ctx context.Context, q SQLExecutor, log *logrus.Logger, operation string, dest interface{}, query string, argsKV map[string]interface{}) error {
	query, args, err := bindNamed(ctx, q, log, operation, query, argsKV)
	if err != nil {
		return err
	}

	if err := q.SelectContext(ctx, dest, query, args...); err != nil {
		log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Errorf("%s execution err", operation)
		return err
	}

	return nil
}

func scanNamed(ctx context.Context, q SQLExecutor, log *logrus.Logger, operation string, query string, argsKV map[string]interface{}, dest ...interface{}) error {
	query, args, err := bindNamed(ctx, q, log, operation, query, argsKV)
	if err != nil {
		return err
	}

	if err := q.QueryRowxContext(ctx, query, args...).Scan(dest...); err != nil {
		log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Errorf("%s execution err", operation)
		return err
	}

	return nil
}
