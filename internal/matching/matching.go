package matching

import (
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/samber/lo"
	"math"
)

const DefaultRecommendedSkills = 5

type Result struct {
	MatchPercent      int      `json:"matchPercent"`
	MatchedSkills     []string `json:"matchedSkills"`
	MissingSkills     []string `json:"missingSkills"`
	RecommendedSkills []string `json:"recommendedSkills"`
}

type Engine struct {
	recommendedLimit int
}

func NewEngine(recommendedLimit int) *Engine {
	if recommendedLimit <= 0 {
		recommendedLimit = DefaultRecommendedSkills
	}
	return &Engine{recommendedLimit: recommendedLimit}
}

// Match scores a candidate's skills against a job's required skills with Jaccard
// similarity. Both lists are canonicalized first, so the output contains canonical
// forms. A nil list means the argument was not provided at all.
func (e *Engine) Match(profileSkills, jobSkills []string) (Result, error) {
	if profileSkills == nil || jobSkills == nil {
		return Result{}, apperrors.InvalidInput("profileSkills and jobSkills must be arrays")
	}

	profile := toSet(profileSkills)
	job := toSet(jobSkills)

	inProfile := make(map[string]struct{}, len(profile))
	for _, s := range profile {
		inProfile[s] = struct{}{}
	}

	matched := make([]string, 0, len(job))
	missing := make([]string, 0, len(job))
	for _, s := range job {
		if _, ok := inProfile[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	union := len(profile) + len(missing)
	score := 0.0
	if union > 0 {
		score = float64(len(matched)) / float64(union)
	}

	recommended := make([]string, 0, e.recommendedLimit)
	recommended = append(recommended, lo.Slice(missing, 0, e.recommendedLimit)...)

	return Result{
		MatchPercent:      roundHalfUp(score * 100),
		MatchedSkills:     matched,
		MissingSkills:     missing,
		RecommendedSkills: recommended,
	}, nil
}

func toSet(list []string) []string {
	canonical := lo.Map(list, func(s string, _ int) string { return skills.Canonical(s) })
	return lo.Uniq(lo.Compact(canonical))
}

func roundHalfUp(x float64) int {
	// 1e-9 absorbs float error such as 0.145*100 = 14.499999999999998
	return int(math.Floor(x + 0.5 + 1e-9))
}
