package icon

// Static SVG fragments composed by Render. All geometry assumes the
// document viewBox 0 0 200 230: condition art occupies the upper square,
// the strip below y=200 is reserved for attribution.

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 230" width="200" height="230">
<rect width="200" height="230" fill="#1c2331"/>
`

const svgClose = `</svg>
`

const sunFragment = `<g id="sun">
<circle cx="100" cy="95" r="38" fill="#ffd054"/>
<g stroke="#ffd054" stroke-width="6" stroke-linecap="round">
<line x1="100" y1="33" x2="100" y2="45"/>
<line x1="100" y1="145" x2="100" y2="157"/>
<line x1="38" y1="95" x2="50" y2="95"/>
<line x1="150" y1="95" x2="162" y2="95"/>
<line x1="56" y1="51" x2="65" y2="60"/>
<line x1="135" y1="130" x2="144" y2="139"/>
<line x1="144" y1="51" x2="135" y2="60"/>
<line x1="65" y1="130" x2="56" y2="139"/>
</g>
</g>
`

const moonFragment = `<g id="moon">
<path d="M 123 60 A 42 42 0 1 0 123 130 A 34 34 0 0 1 123 60 Z" fill="#e8eaed"/>
<circle cx="138" cy="78" r="3" fill="#c5c9d1"/>
<circle cx="128" cy="100" r="5" fill="#c5c9d1"/>
</g>
`

const cloudFragment = `<g id="cloud">
<path d="M 55 122
A 22 22 0 0 1 77 96
A 30 30 0 0 1 134 90
A 24 24 0 0 1 150 132
L 62 132
A 18 18 0 0 1 55 122 Z"
fill="#f4f6f8" stroke="#d7dce2" stroke-width="3"/>
</g>
`

const rainFragment = `<g id="rain" stroke="#4aa8ff" stroke-width="5" stroke-linecap="round">
<line x1="74" y1="150" x2="68" y2="172"/>
<line x1="100" y1="150" x2="94" y2="172"/>
<line x1="126" y1="150" x2="120" y2="172"/>
<line x1="87" y1="178" x2="81" y2="196"/>
<line x1="113" y1="178" x2="107" y2="196"/>
</g>
`

const snowFragment = `<g id="snow" fill="#ffffff">
<circle cx="72" cy="156" r="5"/>
<circle cx="100" cy="164" r="5"/>
<circle cx="128" cy="156" r="5"/>
<circle cx="86" cy="184" r="5"/>
<circle cx="114" cy="184" r="5"/>
</g>
`

const windFragment = `<g id="wind" stroke="#9fb3c8" stroke-width="6" stroke-linecap="round" fill="none">
<path d="M 40 90 L 130 90 A 14 14 0 1 0 116 76"/>
<path d="M 40 120 L 148 120 A 14 14 0 1 1 134 134"/>
<path d="M 40 150 L 104 150"/>
</g>
`

// Partly-cloudy variants nudge the cloud off-centre so the base layer
// stays visible behind it.
const cloudShiftOpen = `<g transform="translate(18,36)">
`

const cloudShiftClose = `</g>
`

const creditFragment = `<text x="100" y="222" text-anchor="middle" font-family="sans-serif" font-size="10" fill="#9fb3c8">Powered by Dark Sky</text>
`
