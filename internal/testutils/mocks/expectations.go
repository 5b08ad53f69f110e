// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/locale"
	localemock "github.com/KirkDiggler/rpg-codex/internal/repositories/locale/mock"
)

// ExpectLocaleTable serves every locale lookup from table. Hashes missing
// from table return NotFound.
func ExpectLocaleTable(mockRepo *localemock.MockRepository, table map[uint64]string) {
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input locale.GetInput) (*locale.GetOutput, error) {
			text, ok := table[input.Hash]
			if !ok {
				return nil, errors.NotFoundf("locale entry %d not found", input.Hash)
			}
			return &locale.GetOutput{Entry: &locale.Entry{Hash: input.Hash, Text: text}}, nil
		}).
		AnyTimes()
}
