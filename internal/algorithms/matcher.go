package algorithms

import (
	"math"
	"sort"
	"strings"
)

const (
	// MaxMatches - сколько кандидатов возвращает Rank
	MaxMatches = 3

	SkillWeight      = 10
	LocationBonus    = 20
	ExperienceWeight = 5
	ReputationFactor = 2
)

// JobDescriptor - то, что нужно подбору от работы
type JobDescriptor struct {
	ID       string
	Skills   []string
	Location string
}

// WorkerDescriptor - кандидат на работу.
// UserID, Contact, ProfilePicURL и FullName только переносятся в результат.
type WorkerDescriptor struct {
	ID            string
	UserID        string
	Skills        []string
	Location      string
	Experience    int
	Ratings       []int
	Contact       string
	ProfilePicURL *string
	FullName      string
}

// MatchResult - кандидат с посчитанным баллом
type MatchResult struct {
	WorkerDescriptor
	MatchScore int
}

// ScoreBreakdown - слагаемые балла
type ScoreBreakdown struct {
	Skills     int `json:"skills"`
	Location   int `json:"location"`
	Experience int `json:"experience"`
	Reputation int `json:"reputation"`
}

func (b ScoreBreakdown) Total() int {
	return b.Skills + b.Location + b.Experience + b.Reputation
}

// Rank считает балл каждого кандидата, сортирует по убыванию
// (при равенстве сохраняется порядок пула) и возвращает не больше MaxMatches.
// Входные данные не изменяются.
func Rank(job JobDescriptor, pool []WorkerDescriptor) []MatchResult {
	results := make([]MatchResult, 0, len(pool))
	for _, w := range pool {
		results = append(results, MatchResult{
			WorkerDescriptor: w.clone(),
			MatchScore:       Score(job, w),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if len(results) > MaxMatches {
		results = results[:MaxMatches]
	}
	return results
}

// Score - итоговый балл кандидата для работы
func Score(job JobDescriptor, worker WorkerDescriptor) int {
	return Breakdown(job, worker).Total()
}

// Breakdown раскладывает балл на слагаемые
func Breakdown(job JobDescriptor, worker WorkerDescriptor) ScoreBreakdown {
	return ScoreBreakdown{
		Skills:     SkillWeight * matchedSkills(job.Skills, worker.Skills),
		Location:   locationScore(job.Location, worker.Location),
		Experience: ExperienceWeight * worker.Experience,
		Reputation: reputationScore(worker.Ratings),
	}
}

// matchedSkills - сколько требуемых навыков покрыто.
// Навык покрыт, если он подстрока навыка кандидата или наоборот, без учета регистра.
func matchedSkills(required, possessed []string) int {
	lowered := make([]string, len(possessed))
	for i, s := range possessed {
		lowered[i] = strings.ToLower(s)
	}

	matched := 0
	for _, skill := range required {
		skill = strings.ToLower(skill)
		for _, have := range lowered {
			if containsEither(skill, have) {
				matched++
				break
			}
		}
	}
	return matched
}

func locationScore(jobLocation, workerLocation string) int {
	if containsEither(strings.ToLower(jobLocation), strings.ToLower(workerLocation)) {
		return LocationBonus
	}
	return 0
}

// reputationScore - round(среднее * 2), половина округляется от нуля
func reputationScore(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return int(math.Round(mean * ReputationFactor))
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func (w WorkerDescriptor) clone() WorkerDescriptor {
	c := w
	if w.Skills != nil {
		c.Skills = append([]string(nil), w.Skills...)
	}
	if w.Ratings != nil {
		c.Ratings = append([]int(nil), w.Ratings...)
	}
	if w.ProfilePicURL != nil {
		url := *w.ProfilePicURL
		c.ProfilePicURL = &url
	}
	return c
}
