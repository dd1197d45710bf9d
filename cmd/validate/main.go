// Command validate checks the authored story content for structural
// problems: dangling dialogue references, unreachable cave scenes and
// non-terminal dead ends. It runs against the compiled-in content, so a
// clean build plus a clean validate run means the story graph is sound.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

func main() {
	v := &StoryValidator{}
	v.validateDialogue()
	v.validateCave()
	v.validateContacts()

	if len(v.errors) > 0 {
		fmt.Fprintf(os.Stderr, "Validation failed:\n%s\n", strings.Join(v.errors, "\n"))
		os.Exit(1)
	}
	fmt.Println("Story content is valid!")
}

type StoryValidator struct {
	errors []string
}

func (v *StoryValidator) addError(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf("  - "+format, args...))
}

// validateDialogue checks that every option points at an existing node and
// that the graph is acyclic. Conversations must end, otherwise a contact can
// keep a player busy forever.
func (v *StoryValidator) validateDialogue() {
	trees := story.DialogueTrees()

	for id, n := range trees {
		if n.ID != id {
			v.addError("dialogue node keyed %q carries ID %q", id, n.ID)
		}
		if len(n.NPCMessages) == 0 && len(n.Options) == 0 {
			v.addError("dialogue node %q has no messages and no options", id)
		}
		for i, opt := range n.Options {
			if strings.TrimSpace(opt.Text) == "" {
				v.addError("dialogue node %q option %d has empty text", id, i)
			}
			if opt.NextNodeID != nil {
				if _, ok := trees[*opt.NextNodeID]; !ok {
					v.addError("dialogue node %q option %d points at unknown node %q", id, i, *opt.NextNodeID)
				}
			}
		}
	}

	for id := range trees {
		if cycle := findDialogueCycle(trees, id, map[string]bool{}); cycle != "" {
			v.addError("dialogue cycle starting at %q: %s", id, cycle)
			break
		}
	}
}

func findDialogueCycle(trees map[string]story.DialogueNode, id string, path map[string]bool) string {
	if path[id] {
		return id
	}
	path[id] = true
	defer delete(path, id)

	for _, opt := range trees[id].Options {
		if opt.NextNodeID == nil {
			continue
		}
		if hit := findDialogueCycle(trees, *opt.NextNodeID, path); hit != "" {
			return id + " -> " + hit
		}
	}
	return ""
}

// validateCave checks that every transition targets an existing scene, that
// ending scenes carry no outgoing edges, and that every scene is reachable
// from the boot scene.
func (v *StoryValidator) validateCave() {
	scenes := story.CaveScenes()

	for id, s := range scenes {
		if s.ID != id {
			v.addError("cave scene keyed %q carries ID %q", id, s.ID)
		}
		if s.Terminal() {
			if len(s.Choices) > 0 || s.AutoNext != "" {
				v.addError("ending scene %q has outgoing transitions", id)
			}
			if strings.TrimSpace(s.Ending.Message) == "" {
				v.addError("ending scene %q has an empty resolution message", id)
			}
			continue
		}
		if len(s.Choices) == 0 && s.AutoNext == "" {
			v.addError("scene %q is a dead end: no choices, no auto transition, no ending", id)
		}
		if len(s.Choices) > 0 && s.AutoNext != "" {
			v.addError("scene %q mixes choices with an auto transition", id)
		}
		if s.AutoNext != "" {
			if _, ok := scenes[s.AutoNext]; !ok {
				v.addError("scene %q auto-transitions to unknown scene %q", id, s.AutoNext)
			}
		}
		for i, c := range s.Choices {
			if _, ok := scenes[c.Target]; !ok {
				v.addError("scene %q choice %d targets unknown scene %q", id, i, c.Target)
			}
		}
	}

	reachable := map[string]bool{}
	var walk func(id string)
	walk = func(id string) {
		if reachable[id] {
			return
		}
		reachable[id] = true
		s, ok := scenes[id]
		if !ok {
			return
		}
		if s.AutoNext != "" {
			walk(s.AutoNext)
		}
		for _, c := range s.Choices {
			walk(c.Target)
		}
	}
	walk(story.SceneBoot)

	for id, s := range scenes {
		if reachable[id] {
			continue
		}
		// Endings may be authored ahead of the route that uses them
		// (ending_collapse); anything else unreachable is dead content.
		if !s.Terminal() {
			v.addError("cave scene %q is unreachable from %q", id, story.SceneBoot)
		}
	}
}

// validateContacts checks that seeded start nodes exist and contact IDs are
// unique, and that the ghost contact does not collide with a seed.
func (v *StoryValidator) validateContacts() {
	trees := story.DialogueTrees()
	seen := map[string]bool{}

	check := func(seed story.ContactSeed) {
		if seen[seed.ID] {
			v.addError("duplicate contact ID %q", seed.ID)
		}
		seen[seed.ID] = true
		if seed.StartNodeID != nil {
			if _, ok := trees[*seed.StartNodeID]; !ok {
				v.addError("contact %q starts at unknown dialogue node %q", seed.ID, *seed.StartNodeID)
			}
		}
		for i, msg := range seed.Messages {
			if strings.TrimSpace(msg.Content) == "" && msg.Attachment == "" {
				v.addError("contact %q seed message %d is empty", seed.ID, i)
			}
		}
	}

	for _, seed := range story.SeedContacts() {
		check(seed)
	}
	check(story.GhostContact())
}
