package source

// SampleText is the built-in demonstration payload, long enough to span
// several packets on every preset.
const SampleText = `Welcome to the Meshtastic Network!

This is a sample message to demonstrate transmission speeds across different radio presets. Meshtastic creates a long range, low power mesh network for communication when traditional infrastructure is unavailable.

Key features of Meshtastic:
- Long range LoRa radio communication (up to 254km record!)
- Low power consumption for battery operation
- Mesh networking with automatic message routing
- End-to-end encryption for secure communications
- GPS position sharing and tracking
- Open source hardware and software

Radio presets balance three key factors:
1. Speed - How fast data transmits
2. Range - How far signals reach
3. Reliability - How well signals penetrate obstacles

The LongFast preset is the default because it provides the best balance for most users. Faster presets like ShortTurbo are great for high-density networks, while slower presets like LongSlow maximize range for remote communications.

This simulation helps you understand how different presets affect real-world message delivery times. Try different presets to see the dramatic differences in transmission speeds!

73, and happy meshing!
`
