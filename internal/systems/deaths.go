package systems

import (
	"sort"

	"github.com/olveryu/WerewolfGameJudge-sub011/internal/domain"
)

// WolfKillTarget сводит таблицу голосов к финальной цели ножа:
// большинство среди непустых голосов; ничья или одни пустые ножи -
// нож не падает (NoSeat). Отключенный нож тоже дает NoSeat.
func WolfKillTarget(n *domain.NightResults) int {
	if n == nil || n.WolfKillDisabled {
		return domain.NoSeat
	}
	tally := make(map[int]int)
	for _, target := range n.Votes {
		if target != domain.NoSeat {
			tally[target]++
		}
	}
	best, bestCount, tie := domain.NoSeat, 0, false
	for target, count := range tally {
		switch {
		case count > bestCount:
			best, bestCount, tie = target, count, false
		case count == bestCount:
			tie = true
		}
	}
	if tie || bestCount == 0 {
		return domain.NoSeat
	}
	return best
}

func seatOfRole(roles map[int]domain.RoleID, role domain.RoleID) int {
	seat := domain.NoSeat
	for s, r := range roles {
		if r == role && (seat == domain.NoSeat || s < seat) {
			seat = s
		}
	}
	return seat
}

// CalculateDeaths - чистая свертка результатов ночи в отсортированный
// список погибших мест. Порядок правил фиксирован; каждый шаг может и
// добавлять, и убирать места из рабочего множества. Каждое правило
// тихо бездействует, если его роли нет за столом.
func CalculateDeaths(n *domain.NightResults, roles map[int]domain.RoleID) []int {
	dead := make(map[int]bool)
	if n == nil {
		return []int{}
	}

	blocked := func(seat int) bool {
		return seat != domain.NoSeat && n.BlockedSeat == seat
	}

	witchSeat := seatOfRole(roles, domain.RoleWitch)
	guardSeat := seatOfRole(roles, domain.RoleGuard)
	queenSeat := seatOfRole(roles, domain.RoleWolfQueen)
	dreamSeat := seatOfRole(roles, domain.RoleDreamcatcher)
	knightSeat := seatOfRole(roles, domain.RoleSpiritKnight)
	seerSeat := seatOfRole(roles, domain.RoleSeer)

	// 1. Волчий нож. Полностью гасится блоком кошмара (WolfKillDisabled
	// учтен внутри WolfKillTarget). Цель умирает, если не защищена:
	// стражем (если страж сам не заблокирован) или зельем ведьмы (если
	// ведьма не заблокирована). Двойная защита - страж и ведьма на одной
	// цели - смертельна.
	kill := WolfKillTarget(n)
	queenDiedByKnife := false
	if kill != domain.NoSeat {
		guarded := n.GuardedSeat == kill && !blocked(guardSeat)
		saved := n.SavedSeat == kill && !blocked(witchSeat)
		dies := !guarded && !saved
		if guarded && saved {
			dies = true
		}
		if dies {
			dead[kill] = true
			queenDiedByKnife = kill == queenSeat
		}
	}

	// 2. Яд ведьмы. Гасится блоком ведьмы; ведьмак невосприимчив к яду.
	poison := n.PoisonedSeat
	poisonLands := poison != domain.NoSeat && !blocked(witchSeat)
	if poisonLands && roles[poison] != domain.RoleWitcher {
		dead[poison] = true
	}

	// 3. Связь королевы волков: погибла от ножа - уводит очарованного.
	if queenDiedByKnife && n.CharmedSeat != domain.NoSeat {
		dead[n.CharmedSeat] = true
	}

	// 4. Ловец снов: цель сна защищена от всего выше; но смерть самого
	// ловца перекрывает защиту - цель уходит вместе с ним.
	if n.DreamSeat != domain.NoSeat && dreamSeat != domain.NoSeat {
		delete(dead, n.DreamSeat)
		if dead[dreamSeat] {
			dead[n.DreamSeat] = true
		}
	}

	// 5. Отражение рыцаря духа: нож об него бессилен; яд отражается в
	// ведьму; проверка провидца отражается в провидца.
	if knightSeat != domain.NoSeat {
		if kill == knightSeat {
			delete(dead, knightSeat)
		}
		if poisonLands && poison == knightSeat {
			delete(dead, knightSeat)
			if witchSeat != domain.NoSeat {
				dead[witchSeat] = true
			}
		}
		if n.SeerCheckSeat == knightSeat && seerSeat != domain.NoSeat {
			dead[seerSeat] = true
		}
	}

	// 6. Обмен магика: смерть переезжает на напарника, только если мертв
	// ровно один из обмененных; оба или никто - без изменений.
	if len(n.SwapSeats) == 2 {
		a, b := n.SwapSeats[0], n.SwapSeats[1]
		switch {
		case dead[a] && !dead[b]:
			delete(dead, a)
			dead[b] = true
		case dead[b] && !dead[a]:
			delete(dead, b)
			dead[a] = true
		}
	}

	out := make([]int, 0, len(dead))
	for seat := range dead {
		out = append(out, seat)
	}
	sort.Ints(out)
	return out
}
