// Copyright (c) 2026, the stationctl contributors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/segmentio/ksuid"
	"go.uber.org/mock/gomock"

	"github.com/stationctl/stationctl/model"
)

// ksuid timestamps have one second granularity, events recorded in the same
// second sort on their random payload so ordering tests need explicit ids
func timedEventID(t time.Time) string {
	id, err := ksuid.FromParts(t, make([]byte, 16))
	Expect(err).ToNot(HaveOccurred())

	return id.String()
}

var _ = Describe("DirectorySessionStore", func() {
	var (
		mockctl   *gomock.Controller
		store     *DirectorySessionStore
		directory string
		err       error
	)

	BeforeEach(func() {
		mockctl = gomock.NewController(GinkgoT())
		logger := newLogger(mockctl)

		directory = filepath.Join(GinkgoT().TempDir(), "session")
		store, err = NewDirectorySessionStore(directory, logger, logger)
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("NewDirectorySessionStore", func() {
		It("Should require a directory", func() {
			_, err := NewDirectorySessionStore("", newLogger(mockctl), newLogger(mockctl))
			Expect(err).To(MatchError(ContainSubstring("cannot be empty")))
		})
	})

	Describe("StartSession", func() {
		It("Should create the directory and record a start event", func() {
			Expect(store.StartSession(&fakeProfile{})).To(Succeed())

			entries, err := os.ReadDir(directory)
			Expect(err).ToNot(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(HaveSuffix(".event"))
		})
	})

	Describe("RecordEvent", func() {
		It("Should fail before the session directory exists", func() {
			err := store.RecordEvent(changedEvent("package", "zsh"))
			Expect(err).To(MatchError(ContainSubstring("does not exist")))
		})

		It("Should reject events without a valid id", func() {
			Expect(store.StartSession(&fakeProfile{})).To(Succeed())

			event := changedEvent("package", "zsh")
			event.EventID = "../escape"

			err := store.RecordEvent(event)
			Expect(err).To(MatchError(ContainSubstring("invalid event ID")))
		})

		It("Should write one file per event", func() {
			Expect(store.StartSession(&fakeProfile{})).To(Succeed())

			event := changedEvent("package", "zsh")
			Expect(store.RecordEvent(event)).To(Succeed())

			data, err := os.ReadFile(filepath.Join(directory, event.EventID+".event"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(model.TransactionEventProtocol))
			Expect(string(data)).To(ContainSubstring(`"name": "zsh"`))
		})
	})

	Describe("AllEvents", func() {
		It("Should round trip events in time order", func() {
			Expect(store.StartSession(&fakeProfile{})).To(Succeed())

			first := changedEvent("package", "zsh")
			first.EventID = timedEventID(time.Now().Add(time.Hour))
			second := changedEvent("dotfile", ".zshrc")
			second.EventID = timedEventID(time.Now().Add(2 * time.Hour))

			Expect(store.RecordEvent(second)).To(Succeed())
			Expect(store.RecordEvent(first)).To(Succeed())

			events, err := store.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(3))
			Expect(events[0]).To(BeAssignableToTypeOf(&model.SessionStartEvent{}))
			Expect(events[1].(*model.TransactionEvent).Name).To(Equal("zsh"))
			Expect(events[2].(*model.TransactionEvent).Name).To(Equal(".zshrc"))
		})

		It("Should return no events for missing directories", func() {
			events, err := store.AllEvents()
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(BeEmpty())
		})
	})

	Describe("EventsForResource", func() {
		It("Should filter by type and name", func() {
			Expect(store.StartSession(&fakeProfile{})).To(Succeed())
			Expect(store.RecordEvent(changedEvent("package", "zsh"))).To(Succeed())
			Expect(store.RecordEvent(changedEvent("package", "git"))).To(Succeed())

			events, err := store.EventsForResource("package", "git")
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(1))
			Expect(events[0].Name).To(Equal("git"))
		})
	})

	Describe("StopSession", func() {
		It("Should summarize and optionally destroy the session", func() {
			Expect(store.StartSession(&fakeProfile{})).To(Succeed())
			Expect(store.RecordEvent(changedEvent("package", "zsh"))).To(Succeed())

			summary, err := store.StopSession(true)
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.TotalResources).To(Equal(1))
			Expect(summary.ChangedResources).To(Equal(1))

			Expect(directory).ToNot(BeADirectory())
		})
	})
})
