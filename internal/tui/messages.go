// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/dlenski/corostc/models"
)

type listLoadedMsg struct {
	activities []models.Activity
	err        error
}

type syncDoneMsg struct {
	count int
	err   error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type deletedMsg struct {
	err error
}

type renamedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
