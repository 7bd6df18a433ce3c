package constants

// Audio
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 48000

	// SpeakerBufferDurationMs is the speaker buffer length
	SpeakerBufferDurationMs = 100

	// BounceSoundDurationMs is the length of one bounce tock
	BounceSoundDurationMs = 60

	// BounceFrequency is the base pitch of the bounce tock in Hz
	BounceFrequency = 660.0

	// BounceSpeedForFullGain is the impact speed that plays at full volume
	BounceSpeedForFullGain = 15.0

	// PopSoundDurationMs is the length of the despawn pop
	PopSoundDurationMs = 120

	// MaxConcurrentSounds bounds the streamers queued in the mixer per tick
	MaxConcurrentSounds = 8
)
