package drops

import "context"

type Repository interface {
	ImportSchedule(ctx context.Context, entries []Entry) (int, error)
}
