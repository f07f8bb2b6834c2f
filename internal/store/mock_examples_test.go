package store_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/store"
)

func TestExampleStore_SaveExamples(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := store.NewMockExampleStore(ctrl)
	rows := []bayes.Example{{Color: bayes.Green, Softness: bayes.Hard, Label: bayes.Unripe}}

	mock.EXPECT().
		SaveExamples("a.csv", rows).
		Return(nil)

	if err := mock.SaveExamples("a.csv", rows); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestExampleStore_SaveExamples_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := store.NewMockExampleStore(ctrl)

	mock.EXPECT().
		SaveExamples(gomock.Any(), gomock.Any()).
		Return(errors.New("mock error"))

	if err := mock.SaveExamples("a.csv", nil); err == nil {
		t.Errorf("expected error, got nil")
	}
}
