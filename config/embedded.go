package config

// Toml is the configuration used when no config file can be read.
const Toml = `# hebkbd configuration

[Layout]
# "pc" or "notebook". The two SI-1452 tables disagree on the punctuation
# layer; run "hebkbd verify" against the host to find out which one it uses.
Variant = "pc"

[Serial]
# Empty Port means: take the first port whose name, USB product or VID:PID
# matches Match. Port may name a device (/dev/ttyACM0) or COM3 on Windows.
Port = ""
Match = "(?i)arduino|usb-serial"
Baud = 9600
# Pause between characters. Raise it if the host drops keys.
DelayMs = 20
# Time the board needs to boot after the port is opened.
SettleMs = 2000
# Pro Micro and Leonardo clones reset on DTR; clear it to keep them running.
DisableDTR = false

[Verify]
# Empty Device means: take the first input device whose name matches Match.
Device = ""
Match = "(?i)arduino|leonardo|pro micro|keyboard"
TimeoutMs = 10000
Probe = "Hello, World! 1234567890 -=[];',./ שלום עולם"

[Hooks]
# Run after every completed send, e.g. Done = "notify-send hebkbd 'text sent'"
Done = ""
DoneShell = false
DoneTimeoutMs = 5000
`
