package sim

import "math"

// timerEpsilon absorbs the nanosecond truncation of frame deltas such as
// time.Second/60, so a timer reaching its threshold fires on the frame that
// completes it rather than one frame later.
const timerEpsilon = 1e-6

// tickScoring handles time-based points and the speed ramp.
func (s *Simulation) tickScoring(dt float64) {
	st := &s.state

	st.ElapsedSinceLastSecond += dt
	if st.ElapsedSinceLastSecond >= 1.0-timerEpsilon {
		if s.cfg.Scoring.CarryFraction {
			whole := math.Floor(st.ElapsedSinceLastSecond + timerEpsilon)
			st.ElapsedSinceLastSecond = math.Max(st.ElapsedSinceLastSecond-whole, 0)
			s.addScore(int(math.Floor(whole*s.profile.ScoreMultiplier + timerEpsilon)))
		} else {
			// Remainder above one second is dropped
			points := int(math.Floor(st.ElapsedSinceLastSecond*s.profile.ScoreMultiplier + timerEpsilon))
			st.ElapsedSinceLastSecond = 0
			s.addScore(points)
		}
	}

	st.DifficultyRampTimer += dt
	if st.DifficultyRampTimer >= s.cfg.Scoring.RampSeconds-timerEpsilon {
		st.DifficultyRampTimer = 0
		st.GameSpeed += s.profile.SpeedRampPer10s
	}
}

// addScore adds points, fires milestones and tracks the high score.
func (s *Simulation) addScore(points int) {
	if points <= 0 {
		return
	}
	s.state.Score += points
	s.checkMilestones()

	if s.state.Score > s.state.HighScore {
		s.state.HighScore = s.state.Score
		s.hooks.Scores.SaveHighScore(s.state.Score)
	}
}

// checkMilestones fires every threshold the score has reached, each once per run.
func (s *Simulation) checkMilestones() {
	ms := s.cfg.Scoring.Milestones
	for s.state.NextMilestone < len(ms) && s.state.Score >= ms[s.state.NextMilestone] {
		threshold := ms[s.state.NextMilestone]
		s.state.NextMilestone++

		s.hooks.Audio.Play(CueMilestone)
		s.addEffect(EffectMilestone, s.player.X+s.player.W/2, s.player.Y)
		s.hooks.Notifier.Milestone(threshold)
	}
}
