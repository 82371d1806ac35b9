package invite

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// Alphabet 초대코드 문자 집합 (0/O, 1/I 등 혼동 문자 제외)
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generator 초대코드 생성기
//
// 전역 랜덤 소스 대신 주입된 소스를 사용하므로 테스트에서 시드를 고정할 수
// 있다. 유일성 검사는 호출자(RoomService)가 저장소를 상대로 수행한다.
type Generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewGenerator 암호학적 시드로 초기화된 Generator 생성
func NewGenerator() *Generator {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// crypto/rand 실패 시 zero seed로라도 동작한다. 유일성은 어차피
		// 저장소의 unique index가 보장한다.
		return NewGeneratorWithSource(rand.NewSource(0))
	}
	return NewGeneratorWithSource(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
}

// NewGeneratorWithSource 주입된 소스로 Generator 생성 (테스트용)
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{r: rand.New(src)}
}

// Generate length 길이의 초대코드 생성
func (g *Generator) Generate(length int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[g.r.Intn(len(Alphabet))]
	}
	return string(b)
}
