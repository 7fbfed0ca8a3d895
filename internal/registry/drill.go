// Package registry holds the catalog of registered drills and notifies
// watchers of catalog changes.
package registry

import (
	"io"
	"sort"
	"sync"
	"time"
)

// RunFunc executes a drill, writing its transcript to w.
type RunFunc func(w io.Writer) error

// DrillInfo holds metadata and the runnable body of a practice drill.
type DrillInfo struct {
	Name       string
	Topic      string
	Summary    string
	Note       string // related study note, if any
	Transcript string // recorded expected output
	Run        RunFunc
}

// DrillRegistry manages all registered drills
type DrillRegistry struct {
	drills   map[string]*DrillInfo
	mutex    sync.RWMutex
	watchers []chan DrillEvent
}

// DrillEvent represents a change in the drill registry
type DrillEvent struct {
	Type      EventType
	Drill     *DrillInfo
	Timestamp time.Time
}

// EventType represents the type of drill event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

// NewDrillRegistry creates a new drill registry
func NewDrillRegistry() *DrillRegistry {
	return &DrillRegistry{
		drills:   make(map[string]*DrillInfo),
		watchers: make([]chan DrillEvent, 0),
	}
}

// Register adds or updates a drill in the registry
func (r *DrillRegistry) Register(drill *DrillInfo) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	eventType := EventTypeAdded
	if _, exists := r.drills[drill.Name]; exists {
		eventType = EventTypeUpdated
	}

	r.drills[drill.Name] = drill

	r.notify(DrillEvent{
		Type:      eventType,
		Drill:     drill,
		Timestamp: time.Now(),
	})
}

// Get retrieves a drill by name
func (r *DrillRegistry) Get(name string) (*DrillInfo, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	drill, exists := r.drills[name]
	return drill, exists
}

// GetAll returns all registered drills sorted by topic, then name
func (r *DrillRegistry) GetAll() []*DrillInfo {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]*DrillInfo, 0, len(r.drills))
	for _, drill := range r.drills {
		result = append(result, drill)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Topic != result[j].Topic {
			return result[i].Topic < result[j].Topic
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// GetByTopic returns all drills for a topic, sorted by name
func (r *DrillRegistry) GetByTopic(topic string) []*DrillInfo {
	var result []*DrillInfo
	for _, drill := range r.GetAll() {
		if drill.Topic == topic {
			result = append(result, drill)
		}
	}
	return result
}

// Topics returns the sorted set of topics with at least one drill
func (r *DrillRegistry) Topics() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	seen := make(map[string]bool)
	var topics []string
	for _, drill := range r.drills {
		if !seen[drill.Topic] {
			seen[drill.Topic] = true
			topics = append(topics, drill.Topic)
		}
	}
	sort.Strings(topics)
	return topics
}

// Remove removes a drill from the registry
func (r *DrillRegistry) Remove(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	drill, exists := r.drills[name]
	if !exists {
		return
	}

	delete(r.drills, name)

	r.notify(DrillEvent{
		Type:      EventTypeRemoved,
		Drill:     drill,
		Timestamp: time.Now(),
	})
}

// Watch returns a channel that receives drill events
func (r *DrillRegistry) Watch() <-chan DrillEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan DrillEvent, 100)
	r.watchers = append(r.watchers, ch)
	return ch
}

// UnWatch removes a watcher channel and closes it
func (r *DrillRegistry) UnWatch(ch <-chan DrillEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// Count returns the number of registered drills
func (r *DrillRegistry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.drills)
}

// notify fans an event out to watchers; callers hold the write lock.
func (r *DrillRegistry) notify(event DrillEvent) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
			// Skip if channel is full
		}
	}
}
