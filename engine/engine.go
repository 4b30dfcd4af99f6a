// Package engine provides the Step() dispatcher that routes analyzed
// commands to world mutations and composes the textual result.
package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nathoo/shmoopland/engine/analyzer"
	"github.com/nathoo/shmoopland/engine/craft"
	"github.com/nathoo/shmoopland/engine/dialogue"
	"github.com/nathoo/shmoopland/engine/quest"
	"github.com/nathoo/shmoopland/engine/random"
	"github.com/nathoo/shmoopland/engine/render"
	"github.com/nathoo/shmoopland/engine/skill"
	"github.com/nathoo/shmoopland/engine/state"
	"github.com/nathoo/shmoopland/loader"
	"github.com/nathoo/shmoopland/types"
)

// IntroQuest starts automatically when the content defines it.
const IntroQuest = "welcome_to_shmoopland"

// directionAliases expands single-letter movement shorthand.
var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"u": "up", "d": "down",
}

var directions = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true, "inside": true, "outside": true,
}

// Game holds the content store and all mutable session state.
type Game struct {
	store    *loader.Store
	world    *state.World
	analyzer *analyzer.Analyzer
	npcs     map[string]*dialogue.NPC
	quests   *quest.Log
	skills   *skill.Set
	bench    *craft.Bench
	renderer *render.Renderer
	rng      *random.RNG
	logger   *slog.Logger

	pendingQuit  bool
	gameOver     bool
	conversation *Conversation
}

// New creates a game session over loaded content. The seed fixes all
// random choices for the session. The analyzer cache is sized to the
// content.
func New(store *loader.Store, seed int64, logger *slog.Logger) *Game {
	return NewWithCache(store, seed, 0, logger)
}

// NewWithCache is New with an explicit analyzer cache capacity.
// A capacity of 0 sizes the cache to the content.
func NewWithCache(store *loader.Store, seed int64, cacheSize int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheSize <= 0 {
		cacheSize = cacheCapacity(store)
	}
	rng := random.New(seed)

	// The world gets its own item records so content stays pristine.
	items := make(map[string]*types.Item, len(store.Items))
	for id, item := range store.Items {
		copied := item
		items[id] = &copied
	}

	g := &Game{
		store:    store,
		world:    state.NewWorld(store.Start, items),
		analyzer: analyzer.New(cacheSize),
		npcs:     map[string]*dialogue.NPC{},
		quests:   quest.NewLog(store.Quests),
		skills:   skill.NewSet(),
		bench:    craft.NewBench(store.Recipes),
		renderer: render.NewRenderer(store.Templates, store.Variables, rng, 0),
		rng:      rng,
		logger:   logger,
	}

	if _, ok := store.Quests[IntroQuest]; ok {
		if _, err := g.quests.Start(IntroQuest); err != nil {
			logger.Warn("intro quest did not start", "quest", IntroQuest, "error", err)
		}
	}
	return g
}

// RNG exposes the session RNG for save/restore.
func (g *Game) RNG() *random.RNG {
	return g.rng
}

// World exposes the mutable state for save/restore.
func (g *Game) World() *state.World {
	return g.world
}

// Quests exposes the quest log for save/restore.
func (g *Game) Quests() *quest.Log {
	return g.quests
}

// Skills exposes the skill set for save/restore.
func (g *Game) Skills() *skill.Set {
	return g.skills
}

// RestoreRNG replaces the session RNG with one advanced to a saved
// position. The renderer keeps sharing it.
func (g *Game) RestoreRNG(seed, position int64) {
	restored := random.Restore(seed, position)
	*g.rng = *restored
}

// GameOver reports whether the session has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// TakeConversation returns the conversation started by the last Step,
// if any, and clears it. Interactive front ends drive the conversation
// loop themselves.
func (g *Game) TakeConversation() *Conversation {
	c := g.conversation
	g.conversation = nil
	return c
}

// Step processes one player command. It never panics across the
// boundary: an internal fault becomes an apologetic line and the world
// stays playable.
func (g *Game) Step(input string) (result types.Result) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("command handler panicked", "input", input, "panic", r)
			result = types.Result{Output: []string{"Something strange happens, but the world rights itself."}}
		}
	}()

	if g.gameOver {
		return types.Result{Output: []string{"The game is over."}, GameOver: true}
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return types.Result{Output: []string{"What do you want to do?"}}
	}

	lower := strings.ToLower(trimmed)
	tokens := strings.Fields(lower)

	if g.pendingQuit {
		g.pendingQuit = false
		if lower == "yes" || lower == "y" {
			g.end()
			return types.Result{Output: []string{"Thanks for playing! Goodbye."}, GameOver: true}
		}
		return types.Result{Output: []string{"Quit cancelled."}}
	}

	an := g.analyzer.Analyze(trimmed)
	if out, handled := g.routeIntent(an, tokens); handled {
		return out
	}
	if out, handled := g.literal(tokens); handled {
		return out
	}
	return g.freeform(an)
}

// Submit is the non-interactive command boundary. Quit takes effect
// immediately, with no confirmation step, and an active conversation
// consumes the input first.
func (g *Game) Submit(input string) types.Result {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	if g.conversation != nil && !g.conversation.Done() {
		reply, done := g.conversation.Say(input)
		if done {
			g.conversation = nil
		}
		return types.Result{Output: []string{reply}}
	}

	if trimmed == "quit" || trimmed == "exit" {
		g.end()
		return types.Result{Output: []string{"Thanks for playing! Goodbye."}, GameOver: true}
	}

	result := g.Step(input)
	// Steps that opened a conversation keep it attached for the next
	// Submit instead of handing it to a front end.
	return result
}

// literal matches the closed command vocabulary.
func (g *Game) literal(tokens []string) (types.Result, bool) {
	first := tokens[0]
	rest := tokens[1:]

	if dir, ok := directionAliases[first]; ok && len(rest) == 0 {
		return g.move(dir), true
	}
	if directions[first] && len(rest) == 0 {
		return g.move(first), true
	}

	switch first {
	case "quit", "exit":
		g.pendingQuit = true
		return types.Result{Output: []string{"Are you sure you want to quit? (yes/no)"}}, true
	case "look":
		if len(rest) == 0 {
			return g.look(), true
		}
		if rest[0] == "at" {
			rest = rest[1:]
		}
		return g.examine(strings.Join(stripArticles(rest), " ")), true
	case "inventory", "inv":
		return g.inventoryListing(), true
	case "help":
		return g.help(), true
	case "go", "move", "walk", "head":
		if len(rest) == 0 {
			return types.Result{Output: []string{"Go where?"}}, true
		}
		return g.move(rest[len(rest)-1]), true
	case "take", "get", "grab":
		if len(rest) == 0 {
			return types.Result{Output: []string{"Take what?"}}, true
		}
		return g.take(strings.Join(stripArticles(rest), " ")), true
	case "drop":
		if len(rest) == 0 {
			return types.Result{Output: []string{"Drop what?"}}, true
		}
		return g.drop(strings.Join(stripArticles(rest), " ")), true
	case "examine", "inspect":
		return g.examineCommand(rest), true
	case "talk", "speak":
		return g.talkCommand(rest), true
	case "quests":
		return g.questListing(), true
	case "quest":
		if len(rest) == 0 {
			return g.questListing(), true
		}
		return g.questStatus(strings.Join(rest, " ")), true
	case "skills":
		return g.skillListing(), true
	case "skill":
		if len(rest) == 0 {
			return g.skillListing(), true
		}
		return g.skillStatus(rest[0]), true
	case "train":
		if len(rest) == 0 {
			return types.Result{Output: []string{"Train which skill?"}}, true
		}
		return g.train(rest[0]), true
	case "recipes":
		return g.recipeListing(), true
	case "craft":
		if len(rest) == 0 {
			return g.recipeListing(), true
		}
		return g.craftItem(strings.Join(stripArticles(rest), " ")), true
	}

	return types.Result{}, false
}

// routeIntent applies the analyzer's classification ahead of the
// literal vocabulary: movement with a direction argument moves, and an
// interaction phrased as a literal examine or talk routes directly.
func (g *Game) routeIntent(an types.Analysis, tokens []string) (types.Result, bool) {
	switch an.Intent {
	case types.IntentMovement:
		for _, obj := range an.Objects {
			if dir, ok := directionAliases[obj]; ok {
				return g.move(dir), true
			}
			if directions[obj] {
				return g.move(obj), true
			}
		}

	case types.IntentInteraction:
		if len(tokens) > 1 {
			switch tokens[0] {
			case "examine", "inspect":
				return g.examineCommand(tokens[1:]), true
			case "talk", "speak":
				return g.talkCommand(tokens[1:]), true
			}
		}
	}
	return types.Result{}, false
}

// examineCommand parses the argument words of an examine.
func (g *Game) examineCommand(rest []string) types.Result {
	if len(rest) == 0 {
		return types.Result{Output: []string{"Examine what?"}}
	}
	return g.examine(strings.Join(stripArticles(rest), " "))
}

// talkCommand parses the argument words of a talk.
func (g *Game) talkCommand(rest []string) types.Result {
	target := stripArticles(rest)
	if len(target) > 0 && (target[0] == "to" || target[0] == "with") {
		target = target[1:]
	}
	if len(target) == 0 {
		return types.Result{Output: []string{"Talk to whom?"}}
	}
	return g.talk(strings.Join(target, " "))
}

// freeform handles input that missed both intent routing and the
// literal vocabulary, falling back on the analyzer's action verb.
func (g *Game) freeform(an types.Analysis) types.Result {
	switch an.Intent {
	case types.IntentMovement:
		return types.Result{Output: []string{"Go where?"}}

	case types.IntentInteraction:
		object := strings.Join(an.Objects, " ")
		switch an.Action {
		case "examine":
			if object == "" {
				return g.look()
			}
			return g.examine(object)
		case "acquire":
			return g.take(object)
		case "discard":
			return g.drop(object)
		case "interact":
			return g.talk(object)
		case "use", "open", "give", "buy", "sell", "ask":
			return types.Result{Output: []string{fmt.Sprintf("You can't %s that here.", an.Action)}}
		}

	case types.IntentGreeting, types.IntentQuestion:
		if ids := g.npcsHere(); len(ids) > 0 {
			return types.Result{Output: []string{
				fmt.Sprintf("Perhaps you should talk to the %s.", displayName(ids[0])),
			}}
		}
		return types.Result{Output: []string{"There is no one here to answer."}}
	}

	return types.Result{Output: []string{"I don't understand that."}}
}

// move walks one exit from the current location.
func (g *Game) move(direction string) types.Result {
	loc, ok := g.store.Locations[g.world.Location]
	if !ok {
		return types.Result{Output: []string{"You are somewhere unknown."}}
	}
	target, ok := loc.Exits[direction]
	if !ok {
		return types.Result{Output: []string{"You can't go that way."}}
	}

	firstVisit := !g.world.Visited[target]
	g.world.MoveTo(target)

	var output []string
	output = append(output, g.describeLocation(target)...)
	if firstVisit {
		if _, msg := g.skills.AddExperience("exploration", 5); msg != "" {
			output = append(output, msg)
		}
	}
	output = append(output, g.advanceQuests("visit_location", target)...)
	return types.Result{Output: output}
}

// look describes the current location.
func (g *Game) look() types.Result {
	return types.Result{Output: g.describeLocation(g.world.Location)}
}

// take picks up an item at the current location.
func (g *Game) take(name string) types.Result {
	if name == "" {
		return types.Result{Output: []string{"Take what?"}}
	}
	id := g.resolveItem(name, g.world.ItemsAt(g.world.Location))
	if id == "" {
		id = canonicalID(name)
	}

	if err := g.world.Take(id); err != nil {
		return types.Result{Output: []string{(&state.NotHereError{Name: displayName(id)}).Error()}}
	}

	output := []string{fmt.Sprintf("You take the %s.", displayName(id))}
	output = append(output, g.advanceQuests("collect_item", id)...)
	return types.Result{Output: output}
}

// drop puts a carried item down at the current location.
func (g *Game) drop(name string) types.Result {
	if name == "" {
		return types.Result{Output: []string{"Drop what?"}}
	}
	id := g.resolveItem(name, g.world.Inventory)
	if id == "" {
		id = canonicalID(name)
	}

	if err := g.world.Drop(id); err != nil {
		return types.Result{Output: []string{(&state.NotCarriedError{Name: displayName(id)}).Error()}}
	}
	return types.Result{Output: []string{fmt.Sprintf("You drop the %s.", displayName(id))}}
}

// examine inspects, in order: a carried item, an item here, an NPC here.
func (g *Game) examine(name string) types.Result {
	if name == "" {
		return g.look()
	}

	if id := g.resolveItem(name, g.world.Inventory); id != "" {
		return g.examineItem(id)
	}
	if id := g.resolveItem(name, g.world.ItemsAt(g.world.Location)); id != "" {
		return g.examineItem(id)
	}
	if id := g.resolveNPC(name); id != "" {
		def := g.store.NPCs[id]
		return types.Result{Output: []string{
			fmt.Sprintf("The %s watches you with interest.", displayName(def.ID)),
		}}
	}

	return types.Result{Output: []string{(&state.NotHereError{Name: name}).Error()}}
}

// loreCheckDifficulty gates the lore reveal on examine.
const loreCheckDifficulty = 2

// examineItem renders the item text. Items that carry lore get a lore
// skill check; passing reveals the hidden line and trains the skill.
func (g *Game) examineItem(id string) types.Result {
	output := []string{g.itemText(id)}
	if item, ok := g.world.Item(id); ok && item.Lore != "" {
		if passed, _ := g.skills.Check("lore", loreCheckDifficulty, g.rng); passed {
			output = append(output, item.Lore)
		}
	}
	return types.Result{Output: output}
}

// itemText prefers the examine text, falling back to the rendered
// description.
func (g *Game) itemText(id string) string {
	item, ok := g.world.Item(id)
	if !ok {
		return "You see nothing special about it."
	}
	if item.ExamineText != "" {
		return render.Render(item.ExamineText, g.world.Context)
	}
	if item.Description != "" {
		return g.renderer.Describe(id, item.Description, g.world.Context)
	}
	return "You see nothing special about it."
}

// talk opens a conversation with an NPC at the current location.
func (g *Game) talk(name string) types.Result {
	if name == "" {
		return types.Result{Output: []string{"Talk to whom?"}}
	}
	id := g.resolveNPC(name)
	if id == "" {
		return types.Result{Output: []string{fmt.Sprintf("There is no %s here to talk to.", name)}}
	}

	npc, ok := g.npcs[id]
	if !ok {
		npc = dialogue.New(g.store.NPCs[id])
		g.npcs[id] = npc
	}

	g.conversation = &Conversation{
		NPCID:    id,
		npc:      npc,
		analyzer: g.analyzer,
		rng:      g.rng,
	}

	output := []string{
		fmt.Sprintf("%s: %s", displayName(id), npc.Greeting(g.rng)),
		"(Say 'bye' to end the conversation.)",
	}
	output = append(output, g.advanceQuests("talk_to_npc", id)...)
	return types.Result{Output: output}
}

// inventoryListing lists carried items.
func (g *Game) inventoryListing() types.Result {
	if len(g.world.Inventory) == 0 {
		return types.Result{Output: []string{"You are carrying nothing."}}
	}
	names := make([]string, 0, len(g.world.Inventory))
	for _, id := range g.world.Inventory {
		names = append(names, displayName(id))
	}
	return types.Result{Output: []string{"You are carrying: " + strings.Join(names, ", ") + "."}}
}

func (g *Game) help() types.Result {
	return types.Result{Output: []string{
		"Commands:",
		"  look / examine <thing>      look around or inspect something",
		"  go <direction>              move (north, south, east, west, ...)",
		"  take <item> / drop <item>   pick up or put down items",
		"  inventory                   list what you carry",
		"  talk to <someone>           start a conversation",
		"  quests / quest <id>         review your quests",
		"  skills / train <skill>      review or practice skills",
		"  recipes / craft <recipe>    craft items from ingredients",
		"  quit                        leave the game",
	}}
}

// questListing shows active, available, and completed quests.
func (g *Game) questListing() types.Result {
	var output []string

	if active := g.quests.Active(); len(active) > 0 {
		output = append(output, "Active quests:")
		for _, id := range active {
			q, _ := g.quests.Status(id)
			output = append(output, fmt.Sprintf("  %s - %s", q.Title, q.Description))
		}
	}
	if available := g.quests.Available(); len(available) > 0 {
		output = append(output, "Available quests:")
		for _, id := range available {
			def := g.store.Quests[id]
			output = append(output, fmt.Sprintf("  %s (start with: quest %s)", def.Title, id))
		}
	}
	if completed := g.quests.Completed(); len(completed) > 0 {
		output = append(output, "Completed quests:")
		for _, id := range completed {
			output = append(output, "  "+g.store.Quests[id].Title)
		}
	}
	if len(output) == 0 {
		output = []string{"You have no quests."}
	}
	return types.Result{Output: output}
}

// questStatus shows one quest's objectives, starting it if it is
// available and not yet active.
func (g *Game) questStatus(name string) types.Result {
	id := canonicalID(name)

	if q, ok := g.quests.Status(id); ok {
		output := []string{fmt.Sprintf("%s: %s", q.Title, q.Description)}
		for _, obj := range q.Objectives {
			mark := "[ ]"
			if obj.Completed {
				mark = "[x]"
			}
			output = append(output, fmt.Sprintf("  %s %s", mark, obj.Description))
		}
		return types.Result{Output: output}
	}

	if g.quests.IsCompleted(id) {
		return types.Result{Output: []string{fmt.Sprintf("You have completed %s.", displayName(id))}}
	}

	q, err := g.quests.Start(id)
	if err != nil {
		return types.Result{Output: []string{"You don't have that quest."}}
	}
	return types.Result{Output: []string{fmt.Sprintf("Quest started: %s - %s", q.Title, q.Description)}}
}

func (g *Game) skillListing() types.Result {
	output := []string{"Your skills:"}
	for _, sk := range g.skills.All() {
		output = append(output, fmt.Sprintf("  %s (level %d, %d/%d xp) - %s",
			sk.Name, sk.Level, sk.Experience, sk.NextLevel, sk.Description))
	}
	return types.Result{Output: output}
}

func (g *Game) skillStatus(name string) types.Result {
	sk, ok := g.skills.Get(name)
	if !ok {
		return types.Result{Output: []string{fmt.Sprintf("Unknown skill: %s", name)}}
	}
	return types.Result{Output: []string{fmt.Sprintf("%s (level %d, %d/%d xp) - %s",
		sk.Name, sk.Level, sk.Experience, sk.NextLevel, sk.Description)}}
}

func (g *Game) train(name string) types.Result {
	_, msg := g.skills.AddExperience(name, skill.TrainAmount)
	return types.Result{Output: []string{msg}}
}

// recipeListing shows the recipes craftable right here, right now.
func (g *Game) recipeListing() types.Result {
	available := g.bench.Available(g.world.Inventory, g.world.Location)
	if len(available) == 0 {
		return types.Result{Output: []string{"You can't craft anything here with what you carry."}}
	}
	output := []string{"You could craft:"}
	for _, r := range available {
		output = append(output, fmt.Sprintf("  %s - %s (craft %s)", r.Name, r.Description, r.ID))
	}
	return types.Result{Output: output}
}

// craftItem runs a recipe: ingredients leave the world, the result
// enters the inventory, crafting skill improves.
func (g *Game) craftItem(name string) types.Result {
	id := canonicalID(name)
	recipe, ok := g.bench.Recipe(id)
	if !ok {
		return types.Result{Output: []string{"You don't know how to craft that."}}
	}

	resultID, _, err := g.bench.Craft(id, g.world.Inventory, g.world.Location)
	if err != nil {
		return types.Result{Output: []string{strings.ToUpper(err.Error()[:1]) + err.Error()[1:] + "."}}
	}

	g.world.Consume(recipe.Ingredients)
	g.world.Grant(resultID)

	output := []string{fmt.Sprintf("You craft the %s.", displayName(resultID))}
	if _, msg := g.skills.AddExperience("crafting", 10); msg != "" {
		output = append(output, msg)
	}
	output = append(output, g.advanceQuests("craft_item", resultID)...)
	return types.Result{Output: output}
}

// advanceQuests feeds a world event to the quest log and applies any
// completions: reward items, experience, and chained quest starts.
func (g *Game) advanceQuests(eventType, target string) []string {
	var output []string
	for _, done := range g.quests.Advance(eventType, target) {
		output = append(output, fmt.Sprintf("Quest complete: %s!", done.Title))
		for _, itemID := range done.Rewards.Items {
			g.world.Grant(itemID)
			output = append(output, fmt.Sprintf("You receive the %s.", displayName(itemID)))
		}
		if done.Rewards.Experience > 0 {
			g.world.Experience += done.Rewards.Experience
			output = append(output, fmt.Sprintf("You gain %d experience.", done.Rewards.Experience))
		}
		if next := g.store.Quests[done.ID].NextQuest; next != "" {
			if q, err := g.quests.Start(next); err == nil {
				output = append(output, fmt.Sprintf("New quest: %s - %s", q.Title, q.Description))
			}
		}
	}
	return output
}

// describeLocation renders the location description and lists items,
// people, and exits.
func (g *Game) describeLocation(id string) []string {
	loc, ok := g.store.Locations[id]
	if !ok {
		return []string{"You are somewhere unknown."}
	}

	output := []string{g.renderer.Describe(id, loc.Description, g.world.Context)}

	if items := g.world.ItemsAt(id); len(items) > 0 {
		names := make([]string, 0, len(items))
		for _, itemID := range items {
			names = append(names, displayName(itemID))
		}
		output = append(output, "You see: "+strings.Join(names, ", ")+".")
	}

	if people := g.npcsHere(); len(people) > 0 {
		names := make([]string, 0, len(people))
		for _, npcID := range people {
			names = append(names, displayName(npcID))
		}
		output = append(output, "Someone is here: "+strings.Join(names, ", ")+".")
	}

	if len(loc.Exits) > 0 {
		dirs := make([]string, 0, len(loc.Exits))
		for dir := range loc.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		output = append(output, "Exits: "+strings.Join(dirs, ", ")+".")
	}
	return output
}

// npcsHere returns the sorted IDs of NPCs at the current location.
func (g *Game) npcsHere() []string {
	var ids []string
	for id, def := range g.store.NPCs {
		if def.Location == g.world.Location {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// resolveItem matches a spoken name against candidate item IDs.
func (g *Game) resolveItem(name string, candidates []string) string {
	want := canonicalID(name)
	for _, id := range candidates {
		if id == want {
			return id
		}
	}
	// Single-word names can match the last ID segment ("map" for
	// "magic_map") as long as the match is unambiguous.
	var match string
	for _, id := range candidates {
		parts := strings.Split(id, "_")
		if parts[len(parts)-1] == want {
			if match != "" {
				return ""
			}
			match = id
		}
	}
	return match
}

// resolveNPC matches a spoken name against NPCs at the current location.
func (g *Game) resolveNPC(name string) string {
	want := canonicalID(name)
	var match string
	for _, id := range g.npcsHere() {
		if id == want {
			return id
		}
		parts := strings.Split(id, "_")
		if parts[len(parts)-1] == want {
			if match != "" {
				return ""
			}
			match = id
		}
	}
	return match
}

// GetState returns the read-only view of the session.
func (g *Game) GetState() types.Snapshot {
	loc := g.store.Locations[g.world.Location]
	return types.Snapshot{
		Location:  g.world.Location,
		Inventory: append([]string{}, g.world.Inventory...),
		Message:   g.renderer.Describe(g.world.Location, loc.Description, g.world.Context),
	}
}

// end releases per-session resources. Safe to call more than once.
func (g *Game) end() {
	g.gameOver = true
	g.conversation = nil
	for _, npc := range g.npcs {
		npc.Close()
	}
	g.analyzer.ClearCache()
	g.logger.Info("session ended", "location", g.world.Location, "experience", g.world.Experience)
}

// Close ends the session without a farewell line.
func (g *Game) Close() {
	if !g.gameOver {
		g.end()
	}
}

// canonicalID turns spoken words into a content ID ("magic map" ->
// "magic_map").
func canonicalID(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(name)), " ", "_")
}

// displayName turns a content ID back into readable words.
func displayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}

// stripArticles removes leading articles from a token list.
func stripArticles(tokens []string) []string {
	out := tokens
	for len(out) > 0 && (out[0] == "the" || out[0] == "a" || out[0] == "an") {
		out = out[1:]
	}
	return out
}

// cacheCapacity sizes the analyzer cache to the content: small worlds
// don't need the full default.
func cacheCapacity(store *loader.Store) int {
	n := len(store.Locations)*4 + len(store.Items)*4 + len(store.NPCs)*8
	if n < 64 {
		n = 64
	}
	return n
}
