package components

import "github.com/yohamta/donburi"

type DamageEventData struct {
	Amount int
	Source string // name of the attacker, for logs
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// QueueDamage adds damage to the entry's pending event, creating it when
// none is queued yet.
func QueueDamage(e *donburi.Entry, amount int, source string) {
	if e == nil || !e.Valid() || amount <= 0 {
		return
	}
	if e.HasComponent(DamageEvent) {
		DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, DamageEvent, &DamageEventData{Amount: amount, Source: source})
}
